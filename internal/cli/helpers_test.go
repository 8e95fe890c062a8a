package cli

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jazzharmony/pbxkit/internal/config"
	"github.com/jazzharmony/pbxkit/internal/ui"
)

// stubConfirmer answers every prompt with a fixed value.
type stubConfirmer struct {
	answer bool
	asked  int
}

func (s *stubConfirmer) Confirm(string, string) (bool, error) {
	s.asked++
	return s.answer, nil
}

// copyFixture copies the shared descriptor fixture into a temp dir.
func copyFixture(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "pbxproj", "testdata", "project.pbxproj"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return writeDescriptor(t, string(data))
}

func writeDescriptor(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "project.pbxproj")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("write descriptor: %v", err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// withDeps installs test dependencies for the given descriptor and
// restores the previous ones when the test ends.
func withDeps(t *testing.T, project string, c ui.Confirmer) *Dependencies {
	t.Helper()
	orig := GetDeps()
	t.Cleanup(func() { SetDeps(orig) })

	if c == nil {
		c = &stubConfirmer{answer: true}
	}
	d := &Dependencies{
		Config:    config.NewDefaultConfig(),
		Project:   project,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Confirmer: c,
		NoColor:   true,
	}
	SetDeps(d)
	return d
}

// failWrites makes every descriptor write fail with err.
func failWrites(t *testing.T, err error) {
	t.Helper()
	orig := saveDescriptor
	t.Cleanup(func() { saveDescriptor = orig })
	saveDescriptor = func(string, string) error { return err }
}

// runCommand invokes run against cmd with the given local flags set and
// returns everything written to stdout.
func runCommand(t *testing.T, cmd *cobra.Command, run func(*cobra.Command, []string) error, flags map[string]string) (string, error) {
	t.Helper()
	resetFlags(t, cmd)
	for name, value := range flags {
		if err := cmd.Flags().Set(name, value); err != nil {
			t.Fatalf("set --%s: %v", name, err)
		}
	}

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	t.Cleanup(func() { cmd.SetOut(nil) })

	err := run(cmd, nil)
	return buf.String(), err
}

// resetFlags restores every flag of cmds to its default after the test.
func resetFlags(t *testing.T, cmds ...*cobra.Command) {
	t.Helper()
	t.Cleanup(func() {
		for _, c := range cmds {
			for _, fs := range []*pflag.FlagSet{c.Flags(), c.PersistentFlags()} {
				fs.VisitAll(func(f *pflag.Flag) {
					_ = f.Value.Set(f.DefValue)
					f.Changed = false
				})
			}
		}
	})
}
