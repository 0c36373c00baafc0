// VKToggle - periodic synthetic key toggler
// Keeps a configured toggle key flipping at a fixed interval
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"
	"time"

	"vktoggle/internal/autostart"
	"vktoggle/internal/config"
	"vktoggle/internal/hotkey"
	"vktoggle/internal/input"
	"vktoggle/internal/notify"
	"vktoggle/internal/osutils"
	"vktoggle/internal/toggler"
	"vktoggle/internal/tray"
)

var (
	version     = "0.1.0"
	showVer     = flag.Bool("version", false, "Show version")
	listKeys    = flag.Bool("list-keys", false, "List supported key names")
	injectOnce  = flag.Bool("once", false, "Inject a single key event and exit")
	useTray     = flag.Bool("tray", false, "Run with a system tray icon")
	startPaused = flag.Bool("paused", false, "Start with injection paused")
	keyName     = flag.String("key", "", "Key to toggle (overrides config)")
	interval    = flag.Duration("interval", 0, "Injection interval (overrides config)")
	sendKeyUp   = flag.Bool("keyup", false, "Pair each key-down with a key-up (overrides config)")
)

func main() {
	flag.Parse()

	if *showVer {
		fmt.Printf("vktoggle version %s\n", version)
		return
	}

	if *listKeys {
		listKeyNames()
		return
	}

	// Initialize config
	cfgMgr, err := config.NewManager()
	if err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}
	if err := cfgMgr.Load(); err != nil {
		log.Printf("Warning: failed to load config: %v", err)
	}

	cfg := cfgMgr.Get()
	applyFlagOverrides(cfg)

	opts, err := togglerOptions(cfg)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	injector := input.NewSystemInjector()

	if *injectOnce {
		runOnce(injector, opts)
		return
	}

	runService(cfgMgr, injector, opts)
}

func listKeyNames() {
	fmt.Println("Supported keys:")
	for _, name := range input.KeyNames() {
		vk, _ := input.KeyCode(name)
		fmt.Printf("  %-12s (VK 0x%02X)\n", name, vk)
	}
}

// applyFlagOverrides lets explicitly passed flags beat config and env.
func applyFlagOverrides(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "key":
			cfg.Key = *keyName
		case "interval":
			cfg.IntervalMS = int((*interval).Milliseconds())
		case "keyup":
			cfg.SendKeyUp = *sendKeyUp
		case "paused":
			cfg.StartPaused = *startPaused
		}
	})
}

func togglerOptions(cfg *config.Config) (toggler.Options, error) {
	vk, err := input.KeyCode(cfg.Key)
	if err != nil {
		return toggler.Options{}, err
	}
	if cfg.IntervalMS <= 0 {
		return toggler.Options{}, fmt.Errorf("interval must be positive, got %dms", cfg.IntervalMS)
	}
	return toggler.Options{
		Key:       vk,
		Flags:     input.FlagExtendedKey,
		Interval:  cfg.Interval(),
		SendKeyUp: cfg.SendKeyUp,
	}, nil
}

// runOnce performs a single injection and reports the platform's answer,
// unlike the loop which deliberately ignores it.
func runOnce(injector input.Injector, opts toggler.Options) {
	count, err := injector.InjectKeyEvent(opts.Key, opts.Flags)
	if err != nil {
		log.Fatalf("Injection failed: %v", err)
	}
	if opts.SendKeyUp {
		if _, err := injector.InjectKeyEvent(opts.Key, opts.Flags|input.FlagKeyUp); err != nil {
			log.Fatalf("Key-up injection failed: %v", err)
		}
	}
	fmt.Printf("Injected %d event(s) for key 0x%02X\n", count, opts.Key)
}

func warnPermissions() {
	switch runtime.GOOS {
	case "windows":
		if !osutils.IsAdmin() {
			log.Println("Note: Injection into elevated windows requires administrator privileges")
		}
	case "darwin":
		if !osutils.AccessibilityTrusted() {
			log.Println("Warning: Accessibility permission missing; injected events will be discarded")
			log.Println("Grant access under System Settings > Privacy & Security > Accessibility")
		}
	}
}

func runService(cfgMgr *config.Manager, injector input.Injector, opts toggler.Options) {
	log.Printf("VKToggle %s starting...", version)

	cfg := cfgMgr.Get()
	warnPermissions()

	tg := toggler.New(injector, opts)
	if cfg.StartPaused {
		tg.Pause()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Debouncer for the pause hotkey
	var lastHkTime time.Time
	var hkMux sync.Mutex
	debounce := func() bool {
		hkMux.Lock()
		defer hkMux.Unlock()
		if time.Since(lastHkTime) < 500*time.Millisecond {
			return false
		}
		lastHkTime = time.Now()
		return true
	}

	if cfg.PauseHotkey != "" {
		hkMgr := hotkey.NewManager()
		if err := hkMgr.Start(); err != nil {
			log.Printf("Warning: Hotkey Engine failed to start: %v", err)
		}
		hkMgr.Register(cfg.PauseHotkey, func() {
			if !debounce() {
				return
			}
			announcePause(cfgMgr, tg.TogglePause())
		})
	}

	if !*useTray {
		if err := tg.Run(ctx); err != nil {
			log.Printf("VKToggle stopped: %v", err)
		}
		return
	}

	// Tray mode: the toggler runs in the background while systray owns the
	// main thread.
	go func() {
		tg.Run(ctx)
	}()

	t := tray.New(&trayApp{tg: tg, cfgMgr: cfgMgr, cancel: cancel}, "VKToggle - key toggler")
	go func() {
		<-ctx.Done()
		t.Stop()
	}()
	t.Run()
	log.Println("VKToggle stopped")
}

func announcePause(cfgMgr *config.Manager, paused bool) {
	if !cfgMgr.Get().ShowNotifications {
		return
	}
	if paused {
		notify.Send("Key injection paused")
	} else {
		notify.Send("Key injection resumed")
	}
}

// trayApp adapts the toggler and supporting services to the tray menu.
type trayApp struct {
	tg     *toggler.Toggler
	cfgMgr *config.Manager
	cancel context.CancelFunc
}

func (a *trayApp) Paused() bool {
	return a.tg.Paused()
}

func (a *trayApp) TogglePause() bool {
	paused := a.tg.TogglePause()
	announcePause(a.cfgMgr, paused)
	return paused
}

func (a *trayApp) InjectNow() {
	a.tg.InjectNow()
}

func (a *trayApp) StartOnBoot() bool {
	return autostart.IsEnabled()
}

func (a *trayApp) SetStartOnBoot(enabled bool) error {
	cfg := a.cfgMgr.Get()
	cfg.StartOnBoot = enabled
	if err := a.cfgMgr.Save(); err != nil {
		log.Printf("Warning: failed to save config: %v", err)
	}
	if enabled {
		return autostart.Enable()
	}
	return autostart.Disable()
}

func (a *trayApp) Quit() {
	a.cancel()
}
