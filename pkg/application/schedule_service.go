package application

import (
	"fmt"

	"github.com/felixgeelhaar/paceline/pkg/domain"
	"github.com/felixgeelhaar/paceline/pkg/domain/schedule"
)

// ScheduleService maintains the activity network and computes its
// critical path.
type ScheduleService struct {
	repo  domain.WorkspaceRepository
	audit domain.AuditLogger
}

func NewScheduleService(repo domain.WorkspaceRepository, audit domain.AuditLogger) *ScheduleService {
	return &ScheduleService{repo: repo, audit: audit}
}

// AddActivity appends a new activity to the network. Dependencies must
// reference activities that already exist.
func (s *ScheduleService) AddActivity(id, name string, duration int, dependsOn []string) (*schedule.Activity, error) {
	activityID, err := domain.NewActivityID(id)
	if err != nil {
		return nil, err
	}

	activities, err := s.loadActivities()
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(activities))
	for _, a := range activities {
		known[a.ID] = true
	}
	if known[activityID.String()] {
		return nil, fmt.Errorf("%w: %s", schedule.ErrDuplicateActivity, activityID)
	}
	for _, dep := range dependsOn {
		if !known[dep] {
			return nil, fmt.Errorf("%w: %s", schedule.ErrUnknownDependency, dep)
		}
	}

	activity, err := schedule.NewActivity(activityID.String(), name, duration, dependsOn)
	if err != nil {
		return nil, err
	}

	activities = append(activities, *activity)
	if err := s.repo.SaveActivities(activities); err != nil {
		return nil, fmt.Errorf("failed to save activities: %w", err)
	}

	return activity, s.audit.Log("activity.add", domain.ActorHuman, map[string]interface{}{
		"activity_id": activity.ID,
		"duration":    activity.Duration,
		"depends_on":  activity.DependsOn,
	})
}

// TransitionActivity applies a lifecycle event to one activity.
func (s *ScheduleService) TransitionActivity(id, event, actor string) (*schedule.Activity, error) {
	activities, err := s.loadActivities()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range activities {
		if activities[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrActivityNotFound, id)
	}

	if err := activities[idx].Transition(event); err != nil {
		return nil, err
	}

	if err := s.repo.SaveActivities(activities); err != nil {
		return nil, fmt.Errorf("failed to save activities: %w", err)
	}

	activity := activities[idx]
	return &activity, s.audit.Log("activity.transition", actor, map[string]interface{}{
		"activity_id": activity.ID,
		"event":       event,
		"status":      string(activity.Status),
	})
}

// ListActivities returns the activity network in insertion order.
func (s *ScheduleService) ListActivities() ([]schedule.Activity, error) {
	return s.loadActivities()
}

// ComputeSchedule runs the critical path method over the network.
func (s *ScheduleService) ComputeSchedule() (*schedule.ScheduleResult, error) {
	activities, err := s.loadActivities()
	if err != nil {
		return nil, err
	}
	if len(activities) == 0 {
		return nil, ErrNoActivities
	}
	return schedule.ComputeSchedule(activities)
}

// Progress returns the duration-weighted completion percentage of the
// network.
func (s *ScheduleService) Progress() (float64, error) {
	activities, err := s.loadActivities()
	if err != nil {
		return 0, err
	}
	return schedule.Progress(activities), nil
}

func (s *ScheduleService) loadActivities() ([]schedule.Activity, error) {
	if !s.repo.IsInitialized() {
		return nil, ErrNotInitialized
	}
	return s.repo.LoadActivities()
}
