package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/rogpeppe/go-internal/testscript"
)

var update = flag.Bool("update", false, "update script files")

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"localhub": func() int {
			return run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
		},
	}))
}

func TestScript(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:           "./testdata/script",
		UpdateScripts: *update,
		Cmds: map[string]func(ts *testscript.TestScript, neg bool, args []string){
			"gitinit":   cmdGitInit,
			"gitremote": cmdGitRemote,
		},
		Setup: func(e *testscript.Env) error {
			home := filepath.Join(e.WorkDir, "home")
			if err := os.MkdirAll(home, 0o755); err != nil {
				return err
			}
			e.Setenv("HOME", home)
			e.Setenv("NO_COLOR", "1")
			return nil
		},
	})
}

// gitinit dir... creates working repositories
func cmdGitInit(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("unsupported: ! gitinit")
	}
	if len(args) < 1 {
		ts.Fatalf("usage: gitinit dir...")
	}
	for _, arg := range args {
		_, err := gogit.PlainInit(ts.MkAbs(arg), false)
		ts.Check(err)
	}
}

// gitremote dir name url adds a plain remote without going through localhub
func cmdGitRemote(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("unsupported: ! gitremote")
	}
	if len(args) != 3 {
		ts.Fatalf("usage: gitremote dir name url")
	}
	repo, err := gogit.PlainOpen(ts.MkAbs(args[0]))
	ts.Check(err)
	_, err = repo.CreateRemote(&config.RemoteConfig{
		Name: args[1],
		URLs: []string{args[2]},
	})
	ts.Check(err)
}
