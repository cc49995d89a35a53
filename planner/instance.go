package planner

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Instance is the raw problem triple consumed by NewProblem.
//
//	Requirements[m][s] site s requires measurement m (M × S).
//	Capabilities[m][r] robot r can perform measurement m (M × R).
//	Costs[i][j]        travel cost from site i to site j (S × S).
type Instance struct {
	Requirements [][]bool    `yaml:"requirements" json:"requirements"`
	Capabilities [][]bool    `yaml:"capabilities" json:"capabilities"`
	Costs        [][]float64 `yaml:"costs" json:"costs"`
}

// DecodeInstance reads a YAML instance from r.
func DecodeInstance(r io.Reader) (Instance, error) {
	var inst Instance
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&inst); err != nil {
		return Instance{}, fmt.Errorf("planner: decode instance: %w", err)
	}

	return inst, nil
}

// EncodeInstance writes inst as YAML to w.
func EncodeInstance(w io.Writer, inst Instance) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(inst); err != nil {
		return fmt.Errorf("planner: encode instance: %w", err)
	}

	return enc.Close()
}

// LoadInstance reads a YAML instance file.
func LoadInstance(path string) (Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Instance{}, fmt.Errorf("planner: read instance %q: %w", path, err)
	}

	return DecodeInstance(bytes.NewReader(data))
}

// SaveInstance writes inst to path as YAML, replacing any existing file.
func SaveInstance(path string, inst Instance) error {
	var buf bytes.Buffer
	if err := EncodeInstance(&buf, inst); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("planner: write instance %q: %w", path, err)
	}

	return nil
}
