package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the command with a config file holding cfg.
func run(t *testing.T, cfg string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	file := filepath.Join(t.TempDir(), "qcalc.yaml")
	require.NoError(t, os.WriteFile(file, []byte(cfg), 0o644))
	cmd := newRootCmd()
	var out, errs bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errs)
	cmd.SetArgs(append([]string{"--config", file, "--color", "never"}, args...))
	err = cmd.Execute()
	return out.String(), errs.String(), err
}

func TestRun(t *testing.T) {
	cases := []struct {
		name string
		cfg  string
		args []string
		want string
	}{
		{"joined", "", []string{"3", "m", "*", "4", "m"}, "12 m^2\n"},
		{"quoted", "", []string{"10 m in km"}, "0.01 km\n"},
		{"dash", "", []string{"--", "-5", "+", "3"}, "-2\n"},
		{"flag", "", []string{"--digits", "2", "1 / 3"}, "0.33\n"},
		{"config", "digits: 3\n", []string{"1 / 3"}, "0.333\n"},
		{"flag-over-config", "digits: 3\n", []string{"--digits", "1", "1 / 3"}, "0.3\n"},
		{"sci", "sci-over: 1000\nsci-digits: 1\n", []string{"1000"}, "1.0e+003\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, errs, err := run(t, c.cfg, c.args...)
			require.NoError(t, err, errs)
			assert.Equal(t, c.want, out)
			assert.Empty(t, errs)
		})
	}
}

func TestRunEnv(t *testing.T) {
	t.Setenv("QCALC_SCI_DIGITS", "2")
	out, _, err := run(t, "", "2^64")
	require.NoError(t, err)
	assert.Equal(t, "1.84e+019\n", out)
}

func TestRunDefinitions(t *testing.T) {
	defs := filepath.Join(t.TempDir(), "defs.yaml")
	require.NoError(t, os.WriteFile(defs, []byte("constants: {dozen: {value: 12}}\n"), 0o644))
	out, _, err := run(t, "definitions: "+defs+"\n", "2 dozen")
	require.NoError(t, err)
	assert.Equal(t, "24\n", out)

	_, errs, err := run(t, "definitions: "+defs+"\n", "2 m")
	assert.ErrorIs(t, err, errReported)
	assert.Contains(t, errs, `unknown unit "m"`)
}

func TestRunReport(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{
			"eval",
			[]string{"1 m + 1 s"},
			"error: 1: cannot add m and s\n  1 m + 1 s\n  ^^^^^^^^^\n",
		},
		{
			"parse",
			[]string{"2", "*", "(3", "+"},
			"  2 * (3 +\n          ^\n",
		},
		{
			"convert",
			[]string{"1 s in m"},
			"  1 s in m\n         ^\n",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, errs, err := run(t, "", c.args...)
			assert.ErrorIs(t, err, errReported)
			assert.Empty(t, out)
			assert.Contains(t, errs, c.want)
		})
	}
}

func TestRunBadConfig(t *testing.T) {
	cases := []struct {
		name string
		cfg  string
		args []string
	}{
		{"digits", "digits: -1\n", []string{"1"}},
		{"color", "", []string{"--color", "sometimes", "1"}},
		{"over", "sci-over: 0\n", []string{"1"}},
		{"defs-missing", "definitions: /nonexistent/qcalc-defs.yaml\n", []string{"1"}},
		{"yaml", "digits: [\n", []string{"1"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := run(t, c.cfg, c.args...)
			require.Error(t, err)
			assert.False(t, errors.Is(err, errReported))
		})
	}
	_, _, err := run(t, "")
	assert.Error(t, err, "no expression")
}

func TestReportColor(t *testing.T) {
	var b bytes.Buffer
	_, err := calc(newLogger(false, &b), "1 / 0", nil)
	require.Error(t, err)
	report(&b, "1 / 0", err, true)
	assert.Contains(t, b.String(), "  \x1b[1;31m^^^^^\x1b[0m\n")
}

func TestDebugLog(t *testing.T) {
	var b bytes.Buffer
	log := newLogger(true, &b)
	ans, err := calc(log, "2 + 2", nil)
	require.NoError(t, err)
	assert.Equal(t, "4", ans)
	assert.Contains(t, b.String(), "parsing")
	assert.Contains(t, b.String(), "evaluated")
	assert.False(t, usecolor("auto", &b))
	assert.True(t, usecolor("always", &b))
}
