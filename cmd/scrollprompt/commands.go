package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/scrollprompt/internal/config"
	"github.com/muurk/scrollprompt/internal/discovery"
	"github.com/muurk/scrollprompt/internal/display"
	"github.com/muurk/scrollprompt/internal/emulator"
	"github.com/muurk/scrollprompt/internal/input"
	"github.com/muurk/scrollprompt/internal/logging"
	"github.com/muurk/scrollprompt/internal/panel"
	"github.com/muurk/scrollprompt/internal/prompt"
)

// errRejected makes a rejection visible in the exit status with --strict
var errRejected = errors.New("rejected")

var strict bool

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(discoverCmd)

	for _, cmd := range []*cobra.Command{runCmd, simulateCmd, serveCmd} {
		addPromptFlags(cmd)
	}
	runCmd.Flags().BoolVar(&strict, "strict", false, "Exit with an error when the prompt is rejected")
	simulateCmd.Flags().BoolVar(&strict, "strict", false, "Exit with an error when the prompt is rejected")
}

func reportDecision(cmd *cobra.Command, decision prompt.Decision) error {
	fmt.Fprintln(cmd.OutOrStdout(), decision.String())
	if strict && decision == prompt.Rejected {
		return errRejected
	}
	return nil
}

// ============================================================================
// run
// ============================================================================

var runCmd = &cobra.Command{
	Use:   "run [script.yaml]",
	Short: "Run prompts on an interactive device emulator",
	Long: `Show a workflow on an emulated device screen in the terminal.

Use the arrow keys as the device's two buttons and space for both buttons
together. y/enter and n/esc confirm or reject directly. When the script has
several workflows and --workflow is not set, the workflow is picked on the
device itself.`,
	Example: `  # Show one long text with the default profile
  scrollprompt run --title To --text 0x12ab34cd56ef7890aabbccddeeff0011 --confirm "Send?"

  # Run a workflow from a script on a three-line screen
  scrollprompt run transfer.yaml --workflow transfer --profile nanox`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	source, err := loadPrompts(args)
	if err != nil {
		return err
	}
	layout, _, err := source.layout()
	if err != nil {
		return err
	}

	var decision prompt.Decision
	err = emulator.Run(cmd.Context(), layout, func(ctx context.Context, b *emulator.Bridge) error {
		w, err := source.chooseWorkflow(ctx, layout, b, b)
		if err != nil {
			return err
		}
		decision, err = runWorkflow(ctx, layout, w, b, b)
		return err
	})
	if err != nil {
		return err
	}
	return reportDecision(cmd, decision)
}

// ============================================================================
// simulate
// ============================================================================

var (
	eventList string
	plain     bool
	center    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [script.yaml]",
	Short: "Replay a button sequence against a workflow",
	Long: `Run a workflow headlessly with a fixed list of button events and print
every screen it renders followed by the decision.

Events are comma or space separated: next, previous, confirm, reject and
select, or the aliases right, left and both. Running out of events before
a decision is an error.`,
	Example: `  # Scroll through and pick the accept screen
  scrollprompt simulate --text "Send 12.5 ETH to 0x12ab" --events next,next,next,select

  # One line per screen, for tests and diffs
  scrollprompt simulate transfer.yaml -w transfer --events "right right both" --plain`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVarP(&eventList, "events", "e", "", "Button events to replay")
	simulateCmd.Flags().BoolVar(&plain, "plain", false, "Print one text line per screen instead of drawing it")
	simulateCmd.Flags().BoolVar(&center, "center", false, "Center each screen in the terminal")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	source, err := loadPrompts(args)
	if err != nil {
		return err
	}
	layout, _, err := source.layout()
	if err != nil {
		return err
	}
	w, err := source.workflow()
	if err != nil {
		return err
	}

	events, err := input.ParseEvents(eventList)
	if err != nil {
		return err
	}
	buttons := input.NewScriptSource(events...)

	var recorder *display.Recorder
	if plain {
		recorder = display.NewRecorder(nil)
	} else {
		sink := display.NewTerminalSink(cmd.OutOrStdout(), layout)
		if center {
			sink = sink.Centered()
		}
		recorder = display.NewRecorder(sink)
	}

	decision, err := runWorkflow(cmd.Context(), layout, w, recorder, buttons)
	if plain {
		fmt.Fprint(cmd.OutOrStdout(), recorder.Transcript())
	}
	if err != nil {
		return err
	}
	if n := buttons.Remaining(); n > 0 {
		logging.Warn("Unused button events", zap.Int("count", n))
	}
	return reportDecision(cmd, decision)
}

// ============================================================================
// serve
// ============================================================================

var (
	serveHost      string
	servePort      int
	serveAdvertise bool
	serveInstance  string
)

var serveCmd = &cobra.Command{
	Use:   "serve [script.yaml]",
	Short: "Serve a workflow to remote panels over a websocket",
	Long: `Start an HTTP server with a websocket endpoint at /ws. Each panel that
connects is shown the workflow and its decision is logged and sent back.
Only one panel may be connected at a time.

With --advertise the server announces itself over mDNS so panels can find
it with 'scrollprompt discover'.`,
	Example: `  # Serve on the configured host and port
  scrollprompt serve transfer.yaml -w transfer

  # Listen on all interfaces and advertise
  scrollprompt serve transfer.yaml -w transfer --host 0.0.0.0 --advertise`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind (default from config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config)")
	serveCmd.Flags().BoolVar(&serveAdvertise, "advertise", false, "Advertise the server over mDNS")
	serveCmd.Flags().StringVar(&serveInstance, "instance", "", "mDNS instance name (default hostname)")
}

func runServe(cmd *cobra.Command, args []string) error {
	source, err := loadPrompts(args)
	if err != nil {
		return err
	}
	layout, profile, err := source.layout()
	if err != nil {
		return err
	}
	w, err := source.workflow()
	if err != nil {
		return err
	}

	registry, err := config.LoadRegistry(configPath)
	if err != nil {
		return err
	}
	prefs := registry.PanelPrefs()
	host, port := prefs.Host, prefs.Port
	if cmd.Flags().Changed("host") {
		host = serveHost
	}
	if cmd.Flags().Changed("port") {
		port = servePort
	}

	srv, err := panel.New(panel.Config{Host: host, Port: port, Layout: layout, Profile: profile})
	if err != nil {
		return err
	}
	if err := srv.Listen(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if serveAdvertise || prefs.Advertise {
		instance := serveInstance
		if instance == "" {
			instance = prefs.Instance
		}
		if instance == "" {
			instance, _ = os.Hostname()
		}
		listenPort := port
		if addr, ok := srv.Addr().(*net.TCPAddr); ok {
			listenPort = addr.Port
		}
		adv, err := discovery.Advertise(instance, listenPort, profile, layout)
		if err != nil {
			return err
		}
		defer adv.Shutdown()
	}

	served := make(chan error, 1)
	go func() { served <- srv.Serve() }()

	fmt.Fprintf(cmd.OutOrStdout(), "Serving workflow %q on ws://%s/ws (profile %s)\n", w.Name, srv.Addr(), profile)

	runErr := srv.RunSessions(ctx, func(ctx context.Context, s *panel.Session) (prompt.Decision, error) {
		decision, err := runWorkflow(ctx, layout, w, s, s)
		if err == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", s.RemoteAddr(), decision)
		}
		return decision, err
	})

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Warn("Panel server shutdown", zap.Error(err))
	}
	if err := <-served; err != nil {
		return err
	}
	return runErr
}

// ============================================================================
// discover
// ============================================================================

var (
	discoverTimeout int
	discoverWait    string
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Find panel servers on the local network",
	Long: `Browse for scrollprompt panel servers advertised over mDNS and print
their address and screen geometry.`,
	Example: `  # Scan for 10 seconds (default)
  scrollprompt discover

  # Quick 3-second scan
  scrollprompt discover --timeout 3

  # Wait for one panel server by instance name
  scrollprompt discover --wait kitchen-terminal --timeout 30`,
	RunE: runDiscover,
}

func init() {
	discoverCmd.Flags().IntVar(&discoverTimeout, "timeout", 10, "Scan timeout in seconds")
	discoverCmd.Flags().StringVar(&discoverWait, "wait", "", "Wait for the server with this instance name and print only it")
}

func runDiscover(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scanning for panels (timeout: %ds)...\n\n", discoverTimeout)

	scanner := discovery.NewScanner()
	scanner.Timeout = time.Duration(discoverTimeout) * time.Second

	if discoverWait != "" {
		p, err := scanner.WaitForPanel(cmd.Context(), discoverWait)
		if err != nil {
			return fmt.Errorf("panel %q: %w", discoverWait, err)
		}
		printPanel(out, 1, p)
		return nil
	}

	panels, err := scanner.ScanForPanels(cmd.Context())
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(panels) == 0 {
		fmt.Fprintln(out, "No panels found.")
		fmt.Fprintln(out, "\nTroubleshooting:")
		fmt.Fprintln(out, "  - Start a server with 'scrollprompt serve --advertise'")
		fmt.Fprintln(out, "  - Check that multicast (UDP 5353) is allowed")
		fmt.Fprintln(out, "  - Try increasing --timeout for slower networks")
		return nil
	}

	fmt.Fprintf(out, "Found %d panel(s):\n\n", len(panels))
	for i, p := range panels {
		printPanel(out, i+1, p)
	}
	return nil
}

func printPanel(out io.Writer, n int, p *discovery.Panel) {
	fmt.Fprintf(out, "%d. %s\n", n, p.Instance)
	fmt.Fprintf(out, "   URL:     %s\n", p.WebSocketURL())
	if layout, err := p.Layout(); err == nil {
		fmt.Fprintf(out, "   Screen:  %dx%d\n", layout.CharsPerLine, layout.LinesPerPage)
	}
	if profile := p.Profile(); profile != "" {
		fmt.Fprintf(out, "   Profile: %s\n", profile)
	}
	fmt.Fprintln(out)
}
