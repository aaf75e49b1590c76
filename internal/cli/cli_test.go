package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/example/stackgen/internal/scaffold"
)

func init() {
	color.NoColor = true
}

// run executes the root command with args against root and returns stdout.
func run(t *testing.T, root string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("STACKGEN_CONFIG", "")

	cmd := RootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append(args, "--root", root))

	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmdStructure(t *testing.T) {
	root := RootCmd()

	want := map[string]bool{"generate": false, "preview": false, "types": false, "history": false, "config": false}
	for _, sub := range root.Commands() {
		name := strings.Fields(sub.Use)[0]
		if _, ok := want[name]; ok {
			want[name] = true
			if sub.Short == "" {
				t.Errorf("%s command should have a Short description", name)
			}
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("%s subcommand not registered", name)
		}
	}
}

func TestGenerateCmd_MissingEntity(t *testing.T) {
	_, err := run(t, t.TempDir(), "generate")
	if !errors.Is(err, scaffold.ErrUsage) {
		t.Fatalf("error = %v, want ErrUsage", err)
	}
}

func TestGenerateCmd_TooManyArgs(t *testing.T) {
	_, err := run(t, t.TempDir(), "generate", "product", "name:string", "extra")
	if !errors.Is(err, scaffold.ErrUsage) {
		t.Fatalf("error = %v, want ErrUsage", err)
	}
}

func TestGenerateCmd_WritesFiles(t *testing.T) {
	root := t.TempDir()

	out, err := run(t, root, "generate", "product", "name:string,price:number,isActive?:boolean")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if !strings.Contains(out, "✓ created     src/product/product.entity.ts") {
		t.Errorf("unexpected output:\n%s", out)
	}
	for _, rel := range []string{
		"src/product/product.entity.ts",
		"src/product/dto/index.ts",
		"src/entities.ts",
		"client/src/services/product.service.ts",
		".stackgen/history.db",
	} {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel))); err != nil {
			t.Errorf("expected %s: %v", rel, err)
		}
	}

	out, err = run(t, root, "history")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if !strings.Contains(out, "product") || !strings.Contains(out, "name:string,price:number,isActive?:boolean") {
		t.Errorf("history output missing run:\n%s", out)
	}
}

func TestGenerateCmd_DefaultFields(t *testing.T) {
	root := t.TempDir()

	if _, err := run(t, root, "generate", "note", "--skip-client", "--no-history"); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "src", "note", "note.entity.ts"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "description: string;") {
		t.Errorf("default fields not used:\n%s", data)
	}
	if _, err := os.Stat(filepath.Join(root, "client")); !os.IsNotExist(err) {
		t.Error("client artifacts should be skipped")
	}
}

func TestGenerateCmd_MalformedSpecWritesNothing(t *testing.T) {
	root := t.TempDir()

	_, err := run(t, root, "generate", "product", "name:string,price")
	if !errors.Is(err, scaffold.ErrMalformedFieldSpec) {
		t.Fatalf("error = %v, want ErrMalformedFieldSpec", err)
	}

	entries, _ := os.ReadDir(root)
	if len(entries) != 0 {
		t.Errorf("failed run touched the project: %v", entries)
	}
}

func TestGenerateCmd_DryRun(t *testing.T) {
	root := t.TempDir()

	out, err := run(t, root, "generate", "orderItem", "quantity:int", "--dry-run")
	if err != nil {
		t.Fatalf("dry run failed: %v", err)
	}
	if !strings.Contains(out, "src/order-item/order-item.entity.ts") || !strings.Contains(out, "(dry-run mode - no files written)") {
		t.Errorf("unexpected output:\n%s", out)
	}

	entries, _ := os.ReadDir(root)
	if len(entries) != 0 {
		t.Errorf("dry run touched the project: %v", entries)
	}
}

func TestPreviewCmd(t *testing.T) {
	root := t.TempDir()

	out, err := run(t, root, "preview", "tag", "label:string")
	if err != nil {
		t.Fatalf("preview failed: %v", err)
	}
	if !strings.Contains(out, "--- src/tag/tag.entity.ts ---") {
		t.Errorf("preview should include content:\n%s", out)
	}
	entries, _ := os.ReadDir(root)
	if len(entries) != 0 {
		t.Errorf("preview touched the project: %v", entries)
	}
}

func TestTypesCmd(t *testing.T) {
	out, err := run(t, t.TempDir(), "types")
	if err != nil {
		t.Fatalf("types failed: %v", err)
	}
	if !strings.Contains(out, "uuid") || !strings.Contains(out, "Identifier") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestConfigInitCmd(t *testing.T) {
	root := t.TempDir()

	out, err := run(t, root, "config", "init")
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(out, "✓ Wrote") {
		t.Errorf("unexpected output: %q", out)
	}
	if _, err := os.Stat(filepath.Join(root, "stackgen.yaml")); err != nil {
		t.Fatalf("stackgen.yaml not written: %v", err)
	}

	if _, err := run(t, root, "config", "init"); err == nil {
		t.Error("second init without --force should fail")
	}
	if _, err := run(t, root, "config", "init", "--force"); err != nil {
		t.Errorf("init --force failed: %v", err)
	}

	out, err = run(t, root, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(out, "backend_dir: src") {
		t.Errorf("unexpected config show output:\n%s", out)
	}
}

func TestHistoryCmd_Disabled(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "stackgen.yaml"), []byte("history:\n  enabled: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, root, "history")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if !strings.Contains(out, "History is disabled") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestGenerateCmd_ConfigDisablesOverwriteAndHistory(t *testing.T) {
	root := t.TempDir()
	yaml := "overwrite: false\nhistory:\n  enabled: false\n"
	if err := os.WriteFile(filepath.Join(root, "stackgen.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := run(t, root, "generate", "product", "name:string"); err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, ".stackgen")); !os.IsNotExist(err) {
		t.Errorf(".stackgen exists with history disabled (stat err = %v)", err)
	}

	entity := filepath.Join(root, "src", "product", "product.entity.ts")
	if err := os.WriteFile(entity, []byte("// edited\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, root, "generate", "product", "name:string")
	if err != nil {
		t.Fatalf("second generate failed: %v", err)
	}
	if !strings.Contains(out, "- skipped     src/product/product.entity.ts") {
		t.Errorf("unexpected output:\n%s", out)
	}
	data, err := os.ReadFile(entity)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "// edited\n" {
		t.Errorf("entity overwritten with overwrite: false:\n%s", data)
	}
}

func TestHistoryShowCmd(t *testing.T) {
	root := t.TempDir()

	out, err := run(t, root, "generate", "product", "name:string")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	var runID string
	for _, line := range strings.Split(out, "\n") {
		if rest, ok := strings.CutPrefix(line, "Run:"); ok {
			runID = strings.TrimSpace(rest)
		}
	}
	if runID == "" {
		t.Fatalf("no run id in output:\n%s", out)
	}

	out, err = run(t, root, "history", "show", runID)
	if err != nil {
		t.Fatalf("history show failed: %v", err)
	}
	if !strings.Contains(out, runID) || !strings.Contains(out, "Entity:     product") {
		t.Errorf("unexpected output:\n%s", out)
	}

	if _, err := run(t, root, "history", "show", "no-such-run"); err == nil {
		t.Error("expected error for unknown run id")
	}
}
