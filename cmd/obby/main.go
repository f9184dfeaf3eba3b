package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/obbycraft/obby/config"
	"github.com/obbycraft/obby/game"
	"github.com/obbycraft/obby/input"
	"github.com/obbycraft/obby/level"
)

func main() {
	mapPath := flag.String("map", "", "Course file (.json or .tmx); empty runs the built-in demo course")
	configPath := flag.String("config", "", "Tuning file (YAML), hot-reloaded while running")
	duration := flag.Float64("duration", 10, "Simulated run length in seconds")
	fps := flag.Int("fps", 60, "Simulated render rate (frames per second)")
	flag.Parse()

	if *fps <= 0 || *duration <= 0 {
		log.Fatalf("Invalid run parameters: fps=%d duration=%g", *fps, *duration)
	}

	grid, course := loadCourse(*mapPath)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load tuning %s: %v", *configPath, err)
		}
		cfg = loaded
	}

	store, err := config.OpenStore()
	if err != nil {
		log.Printf("Warning: running without persistence: %v", err)
		store = nil
	}
	if store != nil {
		saved, err := store.LoadSettings()
		if err != nil {
			log.Printf("Warning: could not load saved settings: %v", err)
		} else if saved != nil {
			saved.ApplyTo(&cfg.Look)
		}
	}

	var reloads <-chan config.Config
	var watchErrs <-chan error
	if *configPath != "" {
		w, err := config.Watch(*configPath)
		if err != nil {
			log.Printf("Warning: tuning hot reload unavailable: %v", err)
		} else {
			defer w.Close()
			reloads = w.Events
			watchErrs = w.Errors
		}
	}

	session := game.NewSession(course, grid, cfg, store)
	log.Printf("Running course %q at %d fps for %gs", course, *fps, *duration)

	frameDt := 1.0 / float64(*fps)
	frames := int(*duration * float64(*fps))
	for i := 0; i < frames; i++ {
		select {
		case next, ok := <-reloads:
			if ok {
				// Configs arriving here already passed Load's validation.
				session.SwapConfig(next)
				log.Printf("Tuning reloaded from %s", *configPath)
			}
		case err, ok := <-watchErrs:
			if ok {
				log.Printf("Tuning watch error: %v", err)
			}
		default:
		}

		session.SetIntent(scriptedIntent(i, *fps))
		session.Update(frameDt)

		if i%*fps == 0 {
			logState(session, i, *fps)
		}
		if session.Completed() {
			log.Printf("Course complete after %.2fs", float64(i+1)*frameDt)
			return
		}
	}

	p := session.View()
	log.Printf("Run over: pos=(%.2f, %.2f, %.2f) grounded=%v checkpoint=%v",
		p.X, p.Y, p.Z, p.Grounded, activeID(session))
}

// scriptedIntent drives the demo run: walk forward, sprint after the first
// three seconds, hop every other second.
func scriptedIntent(frame, fps int) input.Intent {
	return input.Intent{
		MoveForward: 1,
		Sprint:      frame > 3*fps,
		Jump:        frame%(2*fps) == 0 && frame > 0,
	}
}

func logState(s *game.Session, frame, fps int) {
	p := s.View()
	cam := s.Camera()
	log.Printf("t=%3ds pos=(%6.2f, %5.2f, %6.2f) vel=(%5.2f, %5.2f, %5.2f) grounded=%-5v cam=(%.2f, %.2f) checkpoint=%v",
		frame/fps, p.X, p.Y, p.Z, p.SpeedX, p.SpeedY, p.SpeedZ, p.Grounded, cam.Yaw, cam.Pitch, activeID(s))
}

func activeID(s *game.Session) any {
	if cp := s.ActiveCheckpoint(); cp != nil {
		return cp.ID
	}
	return "none"
}

func loadCourse(path string) (*level.Grid, string) {
	if path == "" {
		log.Printf("No course given, running the built-in demo")
		return level.Demo(), "demo"
	}

	dir, file := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	fsys := os.DirFS(dir)

	var g *level.Grid
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tmx":
		g, err = level.LoadTMX(fsys, file)
	default:
		g, err = level.LoadJSON(fsys, file)
	}
	if err != nil {
		log.Fatalf("Failed to load course %s: %v", path, err)
	}
	return g, strings.TrimSuffix(file, filepath.Ext(file))
}
