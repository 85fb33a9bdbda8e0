package main

import (
	"github.com/lcgerke/localhub/internal/constants"
	"github.com/lcgerke/localhub/internal/hub"
	"github.com/lcgerke/localhub/internal/ui"
)

// emit writes data as JSON, or calls human in human format
func (a *app) emit(data interface{}, human func()) error {
	if a.out.IsJSON() {
		return a.out.JSON(data)
	}
	human()
	return nil
}

// printNames prints a plain member listing with a total line
func (a *app) printNames(repos []hub.RepoSummary, total string) {
	for _, r := range repos {
		a.out.Infof("  %s", r.Name)
	}
	a.out.Infof("\n%s: %d repositories", total, len(repos))
}

// printSummary prints the detail lines shared by info and delete
func (a *app) printSummary(s hub.RepoSummary, withPath bool) {
	if withPath {
		a.out.Infof("  Path:     %s", s.Path)
	}
	a.out.Infof("  Size:     %s", ui.FormatSize(s.Size))
	a.out.Infof("  Commits:  %s", ui.FormatCommits(s.Commits))
	if withPath {
		a.out.Infof("  Modified: %s", s.Modified.Format(constants.TimeFormat))
	}
}
