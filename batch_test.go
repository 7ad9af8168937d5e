package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRenderBatchSubstitutions(t *testing.T) {
	text, err := RenderBatch(BatchContext{
		ProjectFile:  "My Game.uproject",
		ProjectName:  "My Game",
		EditorTarget: "MyGameEditor",
	})
	if err != nil {
		t.Fatalf("RenderBatch failed: %v", err)
	}

	for _, want := range []string{
		"echo Project: My Game\n",
		`set "PROJECT_FILE=My Game.uproject"` + "\n",
		`set "PROJECT_NAME=My Game"` + "\n",
		`set "EDITOR_TARGET=MyGameEditor"` + "\n",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("rendered script missing %q", want)
		}
	}
	if strings.Contains(text, "{{") || strings.Contains(text, "\r") {
		t.Error("rendered script has template markers or CR characters")
	}
}

func TestRenderBatchKeepsScriptSteps(t *testing.T) {
	text, err := RenderBatch(BatchContext{ProjectFile: "Foo.uproject", ProjectName: "Foo", EditorTarget: "FooEditor"})
	if err != nil {
		t.Fatalf("RenderBatch failed: %v", err)
	}

	// UBT lookup order
	steps := []string{
		`if not "%UE_UBT_PATH%"==""`,
		`if "%UBT%"=="" if not "%UE_ENGINE_ROOT%"==""`,
		`ConvertFrom-Json).EngineAssociation`,
		`C:\Program Files\Epic Games\!ENGINE_ASSOC!`,
		`D:\Program Files\Epic Games\!ENGINE_ASSOC!`,
		`reg query "HKCU\Software\Epic Games\Unreal Engine\Builds"`,
		`where UnrealBuildTool.exe`,
		`"%UBT%" -projectfiles -project="%PROJECT_PATH%" -game -engine -progress`,
		`"%UBT%" %EDITOR_TARGET% Win64 Development -Project="%PROJECT_PATH%" -WaitMutex -NoHotReloadFromIDE`,
		":end\necho.\npause\n",
	}
	last := -1
	for _, step := range steps {
		idx := strings.Index(text, step)
		if idx < 0 {
			t.Fatalf("rendered script missing %q", step)
		}
		if idx < last {
			t.Errorf("%q appears out of order", step)
		}
		last = idx
	}

	if !strings.Contains(text, `set "PROJECT_PATH=%PROJECT_PATH:\\=\%"`) {
		t.Error("path normalisation line altered")
	}
}

func TestWriteBatchMatchesGolden(t *testing.T) {
	golden, err := os.ReadFile(filepath.Join("testdata", "Shooter.golden.bat"))
	if err != nil {
		t.Fatal(err)
	}

	text, err := RenderBatch(BatchContext{
		ProjectFile:  "Shooter.uproject",
		ProjectName:  "Shooter",
		EditorTarget: "ShooterEditor",
	})
	if err != nil {
		t.Fatalf("RenderBatch failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "CleanRebuild.bat")
	if err := WriteBatch(path, text); err != nil {
		t.Fatalf("WriteBatch failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(string(golden), string(got)); diff != "" {
		t.Errorf("written script differs from golden (-want +got):\n%s", diff)
	}
}

func TestWriteBatchLineEndings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bat")
	if err := os.WriteFile(path, []byte("stale content that is longer than the new one"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := WriteBatch(path, "@echo off\necho.\n"); err != nil {
		t.Fatalf("WriteBatch failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "@echo off\r\necho.\r\n" {
		t.Errorf("unexpected content %q", got)
	}
}
