package cli

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	gojson "github.com/goccy/go-json"
)

const registerOutput = "✅ Added QuickPracticeViewModel.swift to project\n" +
	"✅ Added QuickPracticeViewModelTests.swift to project\n"

func TestRegisterCmd_IsSubcommandOfRoot(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "register" {
			found = true
			break
		}
	}
	if !found {
		t.Error("register should be registered as a subcommand of root")
	}
	for _, name := range []string{"dry-run", "confirm"} {
		if registerCmd.Flags().Lookup(name) == nil {
			t.Errorf("register should have --%s", name)
		}
	}
}

func TestRegister_WritesRecords(t *testing.T) {
	path := copyFixture(t)
	before := readFile(t, path)
	withDeps(t, path, nil)

	out, err := runCommand(t, registerCmd, runRegister, nil)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if out != registerOutput {
		t.Errorf("output = %q, want %q", out, registerOutput)
	}

	after := readFile(t, path)
	if after == before {
		t.Fatal("descriptor should have been rewritten")
	}
	for _, want := range []string{
		"50D081DD15174045962DE9EF /* QuickPracticeViewModel.swift in Sources */ = {isa = PBXBuildFile;",
		"8BF493D838B94315B19952FC /* QuickPracticeViewModel.swift */ = {isa = PBXFileReference;",
		"BCB4F13E032C46C7BE6BFC04 /* QuickPracticeViewModelTests.swift in Sources */,",
	} {
		if !strings.Contains(after, want) {
			t.Errorf("descriptor missing %q", want)
		}
	}
}

func TestRegister_NoAnchorsLeavesFileUntouched(t *testing.T) {
	const text = "// !$*UTF8*$!\n{\n}\n"
	path := writeDescriptor(t, text)
	withDeps(t, path, nil)

	out, err := runCommand(t, registerCmd, runRegister, nil)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if out != registerOutput {
		t.Errorf("confirmation lines should still be printed, got %q", out)
	}
	if got := readFile(t, path); got != text {
		t.Errorf("descriptor changed:\n%s", got)
	}
}

func TestRegister_RunTwiceDuplicates(t *testing.T) {
	path := copyFixture(t)
	withDeps(t, path, nil)

	for i := 0; i < 2; i++ {
		if _, err := runCommand(t, registerCmd, runRegister, nil); err != nil {
			t.Fatalf("run %d: %v", i+1, err)
		}
	}

	after := readFile(t, path)
	if got := strings.Count(after, "8BF493D838B94315B19952FC /* QuickPracticeViewModel.swift */ = {isa = PBXFileReference;"); got != 2 {
		t.Errorf("file reference count = %d, want 2", got)
	}
}

func TestRegister_DryRun(t *testing.T) {
	path := copyFixture(t)
	before := readFile(t, path)
	withDeps(t, path, nil)

	out, err := runCommand(t, registerCmd, runRegister, map[string]string{"dry-run": "true"})
	if err != nil {
		t.Fatalf("register --dry-run: %v", err)
	}
	for _, want := range []string{
		"--- a/" + filepath.ToSlash(path),
		"+++ b/" + filepath.ToSlash(path),
		"+\t\t8BF493D838B94315B19952FC /* QuickPracticeViewModel.swift */",
		"8 insertion(s)(+), 0 deletion(s)(-)",
		"not written",
		registerOutput,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
	if readFile(t, path) != before {
		t.Error("dry run must not write the descriptor")
	}
}

func TestRegister_ConfirmDeclined(t *testing.T) {
	path := copyFixture(t)
	before := readFile(t, path)
	stub := &stubConfirmer{answer: false}
	withDeps(t, path, stub)

	_, err := runCommand(t, registerCmd, runRegister, map[string]string{"confirm": "true"})
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("err = %v, want ErrCancelled", err)
	}
	if stub.asked != 1 {
		t.Errorf("asked = %d, want 1", stub.asked)
	}
	if readFile(t, path) != before {
		t.Error("declined write must leave the descriptor untouched")
	}
}

func TestRegister_WriteFailure(t *testing.T) {
	path := copyFixture(t)
	before := readFile(t, path)
	withDeps(t, path, nil)
	failWrites(t, &fs.PathError{Op: "open", Path: path, Err: fs.ErrPermission})

	out, err := runCommand(t, registerCmd, runRegister, nil)
	if !errors.Is(err, fs.ErrPermission) {
		t.Fatalf("err = %v, want fs.ErrPermission", err)
	}
	if strings.Contains(out, "✅") {
		t.Errorf("a failed write must not print confirmation lines, got %q", out)
	}
	if readFile(t, path) != before {
		t.Error("failed write must leave the descriptor untouched")
	}
}

func TestRegister_MissingDescriptor(t *testing.T) {
	withDeps(t, filepath.Join(t.TempDir(), "missing.pbxproj"), nil)

	out, err := runCommand(t, registerCmd, runRegister, nil)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v, want fs.ErrNotExist", err)
	}
	if out != "" {
		t.Errorf("nothing should be printed before the error, got %q", out)
	}
}

func TestRegister_JSON(t *testing.T) {
	path := copyFixture(t)
	d := withDeps(t, path, nil)
	d.JSON = true

	out, err := runCommand(t, registerCmd, runRegister, nil)
	if err != nil {
		t.Fatalf("register --json: %v", err)
	}

	var got struct {
		Outcome string `json:"outcome"`
		Written bool   `json:"written"`
		Result  struct {
			Files    []string `json:"files"`
			Inserted int      `json:"inserted"`
		} `json:"result"`
	}
	if err := gojson.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if got.Outcome != "changed" || !got.Written {
		t.Errorf("outcome = %q written = %v", got.Outcome, got.Written)
	}
	if got.Result.Inserted != 6 || len(got.Result.Files) != 2 {
		t.Errorf("result = %+v", got.Result)
	}
	if strings.Contains(out, "✅") {
		t.Error("JSON mode must not print confirmation lines")
	}
}

func TestRegister_NoDeps(t *testing.T) {
	orig := GetDeps()
	defer SetDeps(orig)
	SetDeps(nil)

	if err := runRegister(registerCmd, nil); err == nil {
		t.Error("expected error with nil deps")
	}
}
