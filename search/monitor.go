package search

import (
	"github.com/poiesic/prospector/core"
)

// SearchMonitor provides hooks to observe the ranking process.
// Implement this interface to track intermediate steps and results.
type SearchMonitor interface {
	Start(query string)
	AfterVectorQuery(matches []core.Match)
	AfterPersonRetrieval(persons []*core.Person)
	Scored(result *XResult)
	Finish(results []*XResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                       {}
func (n *noopMonitor) AfterVectorQuery(_ []core.Match)      {}
func (n *noopMonitor) AfterPersonRetrieval(_ []*core.Person) {}
func (n *noopMonitor) Scored(_ *XResult)                    {}
func (n *noopMonitor) Finish(_ []*XResult)                  {}
