package output

import (
	"fmt"
	"strings"
)

// BranchAnnotation holds per-branch display metadata
type BranchAnnotation struct {
	NeedsUpdate bool
	Dirty       bool
	Merged      bool
	ReviewRef   *int
	ReviewState string // "open", "closed", "merged", ""
}

// TreeRenderer renders the branch dependency tree from the roots down to
// their dependents. It is wired with callbacks so it stays independent of
// how the graph is stored.
type TreeRenderer struct {
	currentBranch string
	getDependents func(branchName string) []string
	annotations   map[string]BranchAnnotation
}

// NewTreeRenderer creates a tree renderer
func NewTreeRenderer(currentBranch string, getDependents func(branchName string) []string) *TreeRenderer {
	return &TreeRenderer{
		currentBranch: currentBranch,
		getDependents: getDependents,
		annotations:   make(map[string]BranchAnnotation),
	}
}

// SetAnnotation sets the annotation for a branch
func (r *TreeRenderer) SetAnnotation(branchName string, annotation BranchAnnotation) {
	r.annotations[branchName] = annotation
}

// Render renders the tree rooted at the given branch. A branch reachable
// along more than one path is expanded only once; later occurrences are
// marked and not descended into.
func (r *TreeRenderer) Render(rootName string) string {
	var sb strings.Builder
	visited := make(map[string]bool)
	r.renderBranch(&sb, rootName, "", "", visited)
	return sb.String()
}

func (r *TreeRenderer) renderBranch(sb *strings.Builder, branchName, linePrefix, childPrefix string, visited map[string]bool) {
	repeat := visited[branchName]
	visited[branchName] = true

	sb.WriteString(linePrefix)
	sb.WriteString(r.label(branchName, repeat))
	sb.WriteString("\n")

	if repeat {
		return
	}

	dependents := r.getDependents(branchName)
	for i, dependent := range dependents {
		last := i == len(dependents)-1
		if last {
			r.renderBranch(sb, dependent, childPrefix+"└─ ", childPrefix+"   ", visited)
		} else {
			r.renderBranch(sb, dependent, childPrefix+"├─ ", childPrefix+"│  ", visited)
		}
	}
}

func (r *TreeRenderer) label(branchName string, repeat bool) string {
	label := ColorBranchName(branchName, branchName == r.currentBranch)

	if repeat {
		return label + " " + ColorDim("(…)")
	}

	annotation, ok := r.annotations[branchName]
	if !ok {
		return label
	}

	var markers []string
	if annotation.NeedsUpdate {
		markers = append(markers, ColorNeedsUpdate("(needs update)"))
	}
	if annotation.Dirty {
		markers = append(markers, ColorDirty("(dirty)"))
	}
	if annotation.Merged {
		markers = append(markers, ColorDim("(merged)"))
	}
	if annotation.ReviewRef != nil {
		pr := fmt.Sprintf("PR #%d", *annotation.ReviewRef)
		if annotation.ReviewState != "" {
			pr += " " + annotation.ReviewState
		}
		markers = append(markers, ColorMagenta(pr))
	}

	if len(markers) == 0 {
		return label
	}
	return label + " " + strings.Join(markers, " ")
}
