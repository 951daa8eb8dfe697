// Copyright 2022 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"code.gitea.io/faceavatar/modules/setting"
	"code.gitea.io/faceavatar/modules/test"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v2"
)

func makePathOutput(workPath, customConf string) string {
	return fmt.Sprintf("WorkPath=%s\nCustomConf=%s", workPath, customConf)
}

func newTestApp(testCmdAction func(ctx *cli.Context) error) *cli.App {
	app := NewMainApp(AppVersion{})
	testCmd := &cli.Command{Name: "test-cmd", Action: testCmdAction}
	prepareSubcommandWithConfig(testCmd, appGlobalFlags())
	app.Commands = append(app.Commands, testCmd)
	app.DefaultCommand = testCmd.Name
	return app
}

type runResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

func runTestApp(app *cli.App, args ...string) (runResult, error) {
	outBuf := new(strings.Builder)
	errBuf := new(strings.Builder)
	app.Writer = outBuf
	app.ErrWriter = errBuf
	exitCode := -1
	defer test.MockVariableValue(&cli.ErrWriter, app.ErrWriter)()
	defer test.MockVariableValue(&cli.OsExiter, func(code int) {
		if exitCode == -1 {
			exitCode = code // save the exit code once and then reset the writer (to simulate the exit)
			app.Writer, app.ErrWriter, cli.ErrWriter = io.Discard, io.Discard, io.Discard
		}
	})()
	err := RunMainApp(app, args...)
	return runResult{outBuf.String(), errBuf.String(), exitCode}, err
}

// mockCommandSettings restores every setting a command may load
func mockCommandSettings(t *testing.T) {
	t.Cleanup(test.MockVariableValue(&setting.AppWorkPath))
	t.Cleanup(test.MockVariableValue(&setting.CustomConf))
	t.Cleanup(test.MockVariableValue(&setting.CfgProvider))
	t.Cleanup(test.MockVariableValue(&setting.Avatar))
	t.Cleanup(test.MockVariableValue(&setting.CacheService))
	t.Cleanup(test.MockVariableValue(&setting.Provider))
	t.Cleanup(test.MockVariableValue(&setting.Log))
	t.Cleanup(test.MockVariableValue(&setting.IsProd))
	t.Cleanup(test.MockVariableValue(&setting.RunMode))
}

func TestCliCmd(t *testing.T) {
	mockCommandSettings(t)
	defaultWorkPath := setting.AppWorkPath

	cli.CommandHelpTemplate = "(command help template)"
	cli.AppHelpTemplate = "(app help template)"
	cli.SubcommandHelpTemplate = "(subcommand help template)"

	cases := []struct {
		cmd string
		exp string
	}{
		// main command help
		{
			cmd: "./faceavatar help",
			exp: "DEFAULT CONFIGURATION:",
		},

		// parse paths
		{
			cmd: "./faceavatar test-cmd",
			exp: makePathOutput(defaultWorkPath, ""),
		},
		{
			cmd: "./faceavatar -c /tmp/app.ini test-cmd",
			exp: makePathOutput(defaultWorkPath, "/tmp/app.ini"),
		},
		{
			cmd: "./faceavatar test-cmd -c /tmp/app.ini",
			exp: makePathOutput(defaultWorkPath, "/tmp/app.ini"),
		},
		{
			cmd: "./faceavatar test-cmd --work-path /tmp/other --config app.ini",
			exp: makePathOutput("/tmp/other", "/tmp/other/app.ini"),
		},
	}

	app := newTestApp(func(ctx *cli.Context) error {
		_, _ = fmt.Fprint(ctx.App.Writer, makePathOutput(setting.AppWorkPath, setting.CustomConf))
		return nil
	})
	for _, c := range cases {
		t.Run(c.cmd, func(t *testing.T) {
			setting.AppWorkPath, setting.CustomConf = defaultWorkPath, ""
			args := strings.Split(c.cmd, " ") // for test only, "split" is good enough
			r, err := runTestApp(app, args...)
			assert.NoError(t, err, c.cmd)
			assert.NotEmpty(t, c.exp, c.cmd)
			assert.Contains(t, r.Stdout, c.exp, c.cmd)
		})
	}
}

func TestCliCmdError(t *testing.T) {
	mockCommandSettings(t)

	app := newTestApp(func(ctx *cli.Context) error { return fmt.Errorf("normal error") })
	r, err := runTestApp(app, "./faceavatar", "test-cmd")
	assert.Error(t, err)
	assert.Equal(t, 1, r.ExitCode)
	assert.Equal(t, "", r.Stdout)
	assert.Equal(t, "Command error: normal error\n", r.Stderr)

	app = newTestApp(func(ctx *cli.Context) error { return cli.Exit("exit error", 2) })
	r, err = runTestApp(app, "./faceavatar", "test-cmd")
	assert.Error(t, err)
	assert.Equal(t, 2, r.ExitCode)
	assert.Equal(t, "", r.Stdout)
	assert.Equal(t, "exit error\n", r.Stderr)

	app = newTestApp(func(ctx *cli.Context) error { return nil })
	r, err = runTestApp(app, "./faceavatar", "test-cmd")
	assert.NoError(t, err)
	assert.Equal(t, -1, r.ExitCode) // the cli.OsExiter is not called
	assert.Equal(t, "", r.Stdout)
	assert.Equal(t, "", r.Stderr)
}
