package service

import (
	"sort"

	"github.com/riu-shimizu/Project-Todo-Manager/internal/domain"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/view"
)

// assembleTree reshapes flat, order-indexed rows into the nested phase tree,
// attaching re-derived statuses and computed progress to every node. Grouping
// is map-based, so each level is re-sorted by order index afterwards.
func assembleTree(
	phases []*domain.Phase,
	works []*domain.Work,
	tasks []*domain.Task,
	todos []*domain.Todo,
) []view.PhaseNode {
	todosByTask := make(map[string][]*domain.Todo)
	for _, td := range todos {
		todosByTask[td.TaskID] = append(todosByTask[td.TaskID], td)
	}

	taskNodesByWork := make(map[string][]view.TaskNode)
	for _, t := range tasks {
		group := todosByTask[t.ID]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].OrderIndex < group[j].OrderIndex
		})

		todoNodes := make([]view.TodoNode, 0, len(group))
		childStatuses := make([]domain.Status, 0, len(group))
		for _, td := range group {
			todoNodes = append(todoNodes, view.NewTodoNode(td))
			childStatuses = append(childStatuses, td.Status)
		}

		taskNodesByWork[t.WorkID] = append(taskNodesByWork[t.WorkID], view.TaskNode{
			ID:           t.ID,
			ProjectID:    t.ProjectID,
			WorkID:       t.WorkID,
			Title:        t.Title,
			PlannedStart: view.DateString(t.PlannedStart),
			PlannedEnd:   view.DateString(t.PlannedEnd),
			ActualStart:  view.DateString(t.ActualStart),
			ActualEnd:    view.DateString(t.ActualEnd),
			OrderIndex:   t.OrderIndex,
			Status:       t.DerivedStatus(),
			Progress:     nodeProgress(t.DerivedStatus(), childStatuses),
			Todos:        todoNodes,
		})
	}

	workNodesByPhase := make(map[string][]view.WorkNode)
	for _, w := range works {
		taskNodes := taskNodesByWork[w.ID]
		sort.SliceStable(taskNodes, func(i, j int) bool {
			return taskNodes[i].OrderIndex < taskNodes[j].OrderIndex
		})

		childPercents := make([]int, 0, len(taskNodes))
		for _, tn := range taskNodes {
			childPercents = append(childPercents, tn.Progress)
		}
		if taskNodes == nil {
			taskNodes = []view.TaskNode{}
		}

		workNodesByPhase[w.PhaseID] = append(workNodesByPhase[w.PhaseID], view.WorkNode{
			ID:           w.ID,
			ProjectID:    w.ProjectID,
			PhaseID:      w.PhaseID,
			Title:        w.Title,
			PlannedStart: view.DateString(w.PlannedStart),
			PlannedEnd:   view.DateString(w.PlannedEnd),
			ActualStart:  view.DateString(w.ActualStart),
			ActualEnd:    view.DateString(w.ActualEnd),
			OrderIndex:   w.OrderIndex,
			Status:       w.DerivedStatus(),
			Progress:     rollupProgress(w.DerivedStatus(), childPercents),
			Tasks:        taskNodes,
		})
	}

	phaseNodes := make([]view.PhaseNode, 0, len(phases))
	for _, p := range phases {
		workNodes := workNodesByPhase[p.ID]
		sort.SliceStable(workNodes, func(i, j int) bool {
			return workNodes[i].OrderIndex < workNodes[j].OrderIndex
		})

		childPercents := make([]int, 0, len(workNodes))
		for _, wn := range workNodes {
			childPercents = append(childPercents, wn.Progress)
		}
		if workNodes == nil {
			workNodes = []view.WorkNode{}
		}

		phaseNodes = append(phaseNodes, view.PhaseNode{
			ID:           p.ID,
			ProjectID:    p.ProjectID,
			Title:        p.Title,
			PlannedStart: view.DateString(p.PlannedStart),
			PlannedEnd:   view.DateString(p.PlannedEnd),
			ActualStart:  view.DateString(p.ActualStart),
			ActualEnd:    view.DateString(p.ActualEnd),
			OrderIndex:   p.OrderIndex,
			Status:       p.DerivedStatus(),
			Progress:     rollupProgress(p.DerivedStatus(), childPercents),
			Works:        workNodes,
		})
	}

	sort.SliceStable(phaseNodes, func(i, j int) bool {
		return phaseNodes[i].OrderIndex < phaseNodes[j].OrderIndex
	})
	return phaseNodes
}

// nodeProgress applies the own-or-children policy at the todo boundary: a
// task with todos takes its progress from their statuses; without, from its
// own derived status. The two are never blended.
func nodeProgress(own domain.Status, childStatuses []domain.Status) int {
	if len(childStatuses) > 0 {
		return domain.ProgressFromChildStatuses(childStatuses)
	}
	return domain.ProgressFromStatus(own)
}

// rollupProgress applies the same policy one level up, where children already
// carry a percentage: the mean of child percents when children exist, the
// node's own derived status otherwise. Percent roll-up is what lets a 67%
// task surface as 67% on its work and phase instead of being flattened back
// to a status weight.
func rollupProgress(own domain.Status, childPercents []int) int {
	if len(childPercents) > 0 {
		return domain.CombineProgress(childPercents)
	}
	return domain.ProgressFromStatus(own)
}

// projectProgress is the unweighted mean of phase progress values.
func projectProgress(phaseNodes []view.PhaseNode) int {
	percents := make([]int, 0, len(phaseNodes))
	for _, pn := range phaseNodes {
		percents = append(percents, pn.Progress)
	}
	return domain.CombineProgress(percents)
}
