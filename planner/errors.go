package planner

import "errors"

// Sentinel errors returned by the planner.
var (
	// ErrInvalidInstance wraps every defect found while building a Problem.
	ErrInvalidInstance = errors.New("planner: invalid instance")

	// ErrShape indicates inconsistent matrix dimensions between requirements,
	// capabilities and costs, or an empty dimension.
	ErrShape = errors.New("planner: inconsistent instance shape")

	// ErrDepotTask indicates a requirement placed on the depot column.
	ErrDepotTask = errors.New("planner: depot cannot require a measurement")

	// ErrNoCapableRobot indicates a required measurement that no robot can perform.
	ErrNoCapableRobot = errors.New("planner: required measurement has no capable robot")

	// ErrInvalidSolution wraps every invariant breach found by ValidateSolution.
	ErrInvalidSolution = errors.New("planner: invalid solution")

	// ErrDegenerateRoute indicates a route with fewer than two stops.
	ErrDegenerateRoute = errors.New("planner: degenerate route")

	// ErrDepotPlacement indicates a route that does not start and end at the
	// depot, or that visits the depot in its interior.
	ErrDepotPlacement = errors.New("planner: depot must bookend the route")

	// ErrInvalidStop indicates a stop with an unknown kind or out-of-range indices.
	ErrInvalidStop = errors.New("planner: invalid stop")

	// ErrUnknownTask indicates a stop whose (site, measurement) is not required.
	ErrUnknownTask = errors.New("planner: stop is not a required task")

	// ErrIncapableRobot indicates a task assigned to a robot lacking the measurement.
	ErrIncapableRobot = errors.New("planner: robot cannot perform task")

	// ErrDuplicateTask indicates a task served more than once.
	ErrDuplicateTask = errors.New("planner: task served more than once")

	// ErrMissingTask indicates a required task served by no robot.
	ErrMissingTask = errors.New("planner: task not served")

	// ErrRobotCount indicates a solution whose route count differs from the fleet size.
	ErrRobotCount = errors.New("planner: route count differs from robot count")
)
