package schedule

import (
	"sort"
)

// ScheduledActivity is an activity annotated with its computed schedule.
// Times are in days from project start; slack is the delay the activity
// tolerates before moving the finish date.
type ScheduledActivity struct {
	Activity    `yaml:",inline"`
	EarlyStart  int  `json:"early_start" yaml:"early_start"`
	EarlyFinish int  `json:"early_finish" yaml:"early_finish"`
	LateStart   int  `json:"late_start" yaml:"late_start"`
	LateFinish  int  `json:"late_finish" yaml:"late_finish"`
	Slack       int  `json:"slack" yaml:"slack"`
	Critical    bool `json:"critical" yaml:"critical"`
}

// ScheduleResult is the outcome of a critical path computation.
type ScheduleResult struct {
	Activities         []ScheduledActivity `json:"activities" yaml:"activities"`
	CriticalPathIDs    []string            `json:"critical_path_ids" yaml:"critical_path_ids"`
	CriticalActivities []ScheduledActivity `json:"critical_activities" yaml:"critical_activities"`
	TotalDuration      int                 `json:"total_duration" yaml:"total_duration"`
}

// ComputeSchedule runs the two-pass critical path method over the
// activity network. A topological order is computed first with an
// explicit worklist; if no valid order exists the network is cyclic and
// ErrCyclicDependency is returned. The computation is a pure function of
// its input and may be re-run on demand.
func ComputeSchedule(activities []Activity) (*ScheduleResult, error) {
	if len(activities) == 0 {
		return &ScheduleResult{}, nil
	}

	index := make(map[string]int, len(activities))
	for i, a := range activities {
		if _, exists := index[a.ID]; exists {
			return nil, ErrDuplicateActivity
		}
		index[a.ID] = i
	}

	// Edges run dependency -> dependent. Duplicate entries in a
	// dependency list are collapsed so in-degrees stay correct.
	successors := make([][]int, len(activities))
	indegree := make([]int, len(activities))
	for i, a := range activities {
		seen := make(map[string]struct{}, len(a.DependsOn))
		for _, dep := range a.DependsOn {
			if dep == a.ID {
				return nil, ErrSelfDependency
			}
			j, ok := index[dep]
			if !ok {
				return nil, ErrUnknownDependency
			}
			if _, dup := seen[dep]; dup {
				continue
			}
			seen[dep] = struct{}{}
			successors[j] = append(successors[j], i)
			indegree[i]++
		}
	}

	// Kahn's algorithm. The queue is seeded in input order, which keeps
	// the resulting order deterministic.
	order := make([]int, 0, len(activities))
	queue := make([]int, 0, len(activities))
	for i := range activities {
		if indegree[i] == 0 {
			queue = append(queue, i)
		}
	}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		order = append(order, i)
		for _, s := range successors[i] {
			indegree[s]--
			if indegree[s] == 0 {
				queue = append(queue, s)
			}
		}
	}
	if len(order) != len(activities) {
		return nil, ErrCyclicDependency
	}

	// Forward pass: an activity starts when its last dependency finishes.
	earlyStart := make([]int, len(activities))
	earlyFinish := make([]int, len(activities))
	totalDuration := 0
	for _, i := range order {
		es := 0
		for _, dep := range activities[i].DependsOn {
			if ef := earlyFinish[index[dep]]; ef > es {
				es = ef
			}
		}
		earlyStart[i] = es
		earlyFinish[i] = es + activities[i].Duration
		if earlyFinish[i] > totalDuration {
			totalDuration = earlyFinish[i]
		}
	}

	// Backward pass: an activity must finish before its earliest successor
	// needs to start. Terminal activities finish with the project.
	lateStart := make([]int, len(activities))
	lateFinish := make([]int, len(activities))
	for k := len(order) - 1; k >= 0; k-- {
		i := order[k]
		lf := totalDuration
		for _, s := range successors[i] {
			if lateStart[s] < lf {
				lf = lateStart[s]
			}
		}
		lateFinish[i] = lf
		lateStart[i] = lf - activities[i].Duration
	}

	result := &ScheduleResult{
		Activities:    make([]ScheduledActivity, len(activities)),
		TotalDuration: totalDuration,
	}
	for i, a := range activities {
		slack := lateStart[i] - earlyStart[i]
		result.Activities[i] = ScheduledActivity{
			Activity:    a,
			EarlyStart:  earlyStart[i],
			EarlyFinish: earlyFinish[i],
			LateStart:   lateStart[i],
			LateFinish:  lateFinish[i],
			Slack:       slack,
			Critical:    slack == 0,
		}
	}

	for _, sa := range result.Activities {
		if sa.Critical {
			result.CriticalActivities = append(result.CriticalActivities, sa)
		}
	}
	sort.SliceStable(result.CriticalActivities, func(a, b int) bool {
		return result.CriticalActivities[a].EarlyStart < result.CriticalActivities[b].EarlyStart
	})
	for _, sa := range result.CriticalActivities {
		result.CriticalPathIDs = append(result.CriticalPathIDs, sa.ID)
	}

	return result, nil
}
