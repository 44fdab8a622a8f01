package orion

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"testing"

	"golang.org/x/image/bmp"
)

func TestWithEnvironment(t *testing.T) {
	env := map[string]string{
		"XENON_BACKEND":              "headless",
		"XENON_LOG_LEVEL":            "debug",
		"XENON_CPU_PROFILE":          "/tmp/profile",
		"XENON_HARDWARE_MODE_SWITCH": "false",
	}

	opts, err := RunGameOptions{Backend: "glfw"}.withEnvironment(func(key string) string { return env[key] })
	if err != nil {
		t.Fatal(err)
	}

	if opts.Backend != "headless" || opts.LogLevel != "debug" || opts.CPUProfile != "/tmp/profile" {
		t.Fatalf("unexpected options %+v", opts)
	}

	if !opts.BorderlessFullScreen {
		t.Fatalf("expected borderless fullscreen")
	}

	env["XENON_HARDWARE_MODE_SWITCH"] = "maybe"

	if _, err := (RunGameOptions{}).withEnvironment(func(key string) string { return env[key] }); err == nil {
		t.Fatalf("expected an error for an invalid boolean")
	}
}

func TestWithDefaults(t *testing.T) {
	opts := RunGameOptions{WindowHeight: 480}.withDefaults()

	if opts.WindowWidth != 1000 || opts.WindowHeight != 480 || opts.WindowTitle != "Xenon" {
		t.Fatalf("unexpected options %+v", opts)
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"Warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}

	for input, expected := range cases {
		actual, err := ParseLogLevel(input)
		if err != nil {
			t.Fatalf("parse %q: %s", input, err)
		}

		if actual != expected {
			t.Fatalf("parse %q: expected %s, got %s", input, expected, actual)
		}
	}

	if _, err := ParseLogLevel("verbose"); err == nil {
		t.Fatalf("expected an error for an unknown level")
	}
}

func testIcon() image.Image {
	icon := image.NewRGBA(image.Rect(0, 0, 4, 4))
	icon.Set(1, 2, color.RGBA{R: 255, A: 255})
	return icon
}

func TestLoadIcon(t *testing.T) {
	var bmpData, pngData bytes.Buffer

	if err := bmp.Encode(&bmpData, testIcon()); err != nil {
		t.Fatal(err)
	}

	if err := png.Encode(&pngData, testIcon()); err != nil {
		t.Fatal(err)
	}

	for name, data := range map[string][]byte{"bmp": bmpData.Bytes(), "png": pngData.Bytes()} {
		t.Run(name, func(t *testing.T) {
			icon, err := LoadIcon(data)
			if err != nil {
				t.Fatal(err)
			}

			if icon.Bounds().Dx() != 4 || icon.Bounds().Dy() != 4 {
				t.Fatalf("unexpected bounds %v", icon.Bounds())
			}

			r, _, _, _ := icon.At(1, 2).RGBA()
			if r != 0xffff {
				t.Fatalf("expected a red pixel")
			}
		})
	}

	if _, err := LoadIcon([]byte("BMbroken")); err == nil {
		t.Fatalf("expected an error for a broken bmp")
	}

	if _, err := LoadIcon([]byte("nothing")); err == nil {
		t.Fatalf("expected an error for unknown data")
	}
}

func TestRunGameHeadless(t *testing.T) {
	t.Setenv("XENON_BACKEND", "")
	t.Setenv("XENON_LOG_LEVEL", "")
	t.Setenv("XENON_CPU_PROFILE", "")
	t.Setenv("XENON_HARDWARE_MODE_SWITCH", "")

	game := &testGame{}
	game.onUpdate = func(GameTime) error {
		if len(game.updates) == 2 {
			game.loop.Exit()
		}

		return nil
	}

	err := RunGame(RunGameOptions{
		Game:        game,
		Backend:     "headless",
		WindowIcon:  testIcon(),
		WindowTitle: "run",
	})

	if err != nil {
		t.Fatal(err)
	}

	if game.initialized != 1 || len(game.updates) != 2 || game.exiting != 1 {
		t.Fatalf("unexpected game calls %d, %d, %d", game.initialized, len(game.updates), game.exiting)
	}

	if game.loop.State() != LoopStopped || game.loop.Window() != nil {
		t.Fatalf("expected a disposed loop")
	}
}

func TestRunGameErrors(t *testing.T) {
	t.Setenv("XENON_BACKEND", "")
	t.Setenv("XENON_LOG_LEVEL", "")

	if err := RunGame(RunGameOptions{}); !errors.Is(err, ErrNilGame) {
		t.Fatalf("expected ErrNilGame, got %v", err)
	}

	if err := RunGame(RunGameOptions{Game: &testGame{}, Backend: "commodore"}); err == nil {
		t.Fatalf("expected an error for an unknown backend")
	}

	if err := RunGame(RunGameOptions{Game: &testGame{}, Backend: "headless", LogLevel: "loud"}); err == nil {
		t.Fatalf("expected an error for an invalid log level")
	}
}
