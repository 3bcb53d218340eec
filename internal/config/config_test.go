package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"tickdown/internal/config"
)

func TestLoadDefaultsAndClampQuirk(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	if cfg.Render.Width != 640 {
		t.Fatalf("unexpected default width: %d", cfg.Render.Width)
	}
	// The documented default height (80) sits below the clamp floor, so the
	// effective default is always 150.
	if cfg.Render.Height != 150 {
		t.Fatalf("expected default height clamped to 150, got %d", cfg.Render.Height)
	}
	if cfg.Render.Frames != 30 {
		t.Fatalf("unexpected default frames: %d", cfg.Render.Frames)
	}
	if cfg.Render.Color != "ffe600" || cfg.Render.Background != "000000" {
		t.Fatalf("unexpected default colors: %q on %q", cfg.Render.Color, cfg.Render.Background)
	}
	if cfg.Render.Name != "default" {
		t.Fatalf("unexpected default name: %q", cfg.Render.Name)
	}
	if cfg.Render.Timezone != "uk" {
		t.Fatalf("unexpected default timezone: %q", cfg.Render.Timezone)
	}
	if cfg.Render.PassedMessage != "Date has passed!" {
		t.Fatalf("unexpected default passed message: %q", cfg.Render.PassedMessage)
	}
	if !cfg.History.Enabled {
		t.Fatal("expected history enabled by default")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %q/%q", cfg.Logging.Format, cfg.Logging.Level)
	}
}

func TestLoadClampsRenderBounds(t *testing.T) {
	cases := []struct {
		name string
		toml string
		want func(*testing.T, *config.Config)
	}{
		{
			name: "width below floor",
			toml: "[render]\nwidth = 50\n",
			want: func(t *testing.T, cfg *config.Config) {
				if cfg.Render.Width != 150 {
					t.Fatalf("width = %d, want 150", cfg.Render.Width)
				}
			},
		},
		{
			name: "width above ceiling",
			toml: "[render]\nwidth = 5000\n",
			want: func(t *testing.T, cfg *config.Config) {
				if cfg.Render.Width != 1000 {
					t.Fatalf("width = %d, want 1000", cfg.Render.Width)
				}
			},
		},
		{
			name: "height above ceiling",
			toml: "[render]\nheight = 900\n",
			want: func(t *testing.T, cfg *config.Config) {
				if cfg.Render.Height != 500 {
					t.Fatalf("height = %d, want 500", cfg.Render.Height)
				}
			},
		},
		{
			name: "frames below floor",
			toml: "[render]\nframes = 0\n",
			want: func(t *testing.T, cfg *config.Config) {
				if cfg.Render.Frames != 1 {
					t.Fatalf("frames = %d, want 1", cfg.Render.Frames)
				}
			},
		},
		{
			name: "frames above ceiling",
			toml: "[render]\nframes = 200\n",
			want: func(t *testing.T, cfg *config.Config) {
				if cfg.Render.Frames != 90 {
					t.Fatalf("frames = %d, want 90", cfg.Render.Frames)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tickdown.toml")
			if err := os.WriteFile(path, []byte(tc.toml), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			cfg, _, exists, err := config.Load(path)
			if err != nil {
				t.Fatalf("Load returned error: %v", err)
			}
			if !exists {
				t.Fatal("expected config file to exist")
			}
			tc.want(t, cfg)
		})
	}
}

func TestLoadRejectsBadColors(t *testing.T) {
	for _, hex := range []string{"xyzxyz", "fff", "ffe6000"} {
		path := filepath.Join(t.TempDir(), "tickdown.toml")
		if err := os.WriteFile(path, []byte("[render]\ncolor = \""+hex+"\"\n"), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
		if _, _, _, err := config.Load(path); err == nil {
			t.Fatalf("expected error for color %q", hex)
		}
	}
}

func TestNormalizeStripsHashAndLowercases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tickdown.toml")
	if err := os.WriteFile(path, []byte("[render]\ncolor = \"#FFE600\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Render.Color != "ffe600" {
		t.Fatalf("unexpected color: %q", cfg.Render.Color)
	}
}

func TestOutputPathUsesTmpSubdirectory(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	got := cfg.OutputPath("")
	want := filepath.Join(cfg.Paths.OutDir, "tmp", "default.gif")
	if got != want {
		t.Fatalf("OutputPath = %q, want %q", got, want)
	}
	if cfg.OutputPath("launch") != filepath.Join(cfg.Paths.OutDir, "tmp", "launch.gif") {
		t.Fatalf("unexpected named output path: %q", cfg.OutputPath("launch"))
	}
}

func TestEnsureDirectoriesCreatesTmp(t *testing.T) {
	base := t.TempDir()
	path := filepath.Join(base, "tickdown.toml")
	content := "[paths]\nout_dir = \"" + filepath.Join(base, "work") + "\"\n" +
		"log_dir = \"" + filepath.Join(base, "logs") + "\"\n" +
		"state_dir = \"" + filepath.Join(base, "state") + "\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	info, err := os.Stat(filepath.Join(base, "work", "tmp"))
	if err != nil || !info.IsDir() {
		t.Fatalf("expected tmp directory, err=%v", err)
	}
}
