// SPDX-License-Identifier: MIT
// Package midi2demo is a thin CLI entry point that exercises the
// bytestream/UMP/CI translators against standard input, styled after
// DMRHub's cmd/root.go + internal/cmd/root.go: a cobra.Command loads a
// configulator-defaulted Config, installs a tint-formatted slog handler,
// and fans the input out to independently-reset translator instances
// joined with an errgroup.Group.
package midi2demo

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/USA-RedDragon/configulator"
	"github.com/go-midi2/midi2core/internal/bytestream"
	"github.com/go-midi2/midi2core/internal/ci"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// NewCommand returns the midi2demo root command.
func NewCommand(version, commit string) *cobra.Command {
	cfg, err := configulator.New[Config]().Default()
	if err != nil {
		cfg = Config{}
	}
	if cfg.GroupFilter == 0 {
		cfg.GroupFilter = 0xFFFF
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	var instances int
	var ciMode bool

	cmd := &cobra.Command{
		Use:     "midi2demo",
		Short:   "Translate a legacy MIDI byte stream (or MIDI-CI payload) read from stdin",
		Version: fmt.Sprintf("%s (%s)", version, commit),
		Annotations: map[string]string{
			"version": version,
			"commit":  commit,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			setupLogger(cfg.LogLevel)
			if ciMode {
				return runCI(cmd.Context(), cfg, os.Stdin)
			}
			return runTranslate(cmd.Context(), cfg, os.Stdin, instances)
		},
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	cmd.Flags().Uint8Var(&cfg.DefaultGroup, "default-group", cfg.DefaultGroup, "UMP group assigned to translated legacy bytes (0-15)")
	cmd.Flags().Uint8Var(&cfg.Cable, "cable", cfg.Cable, "USB-MIDI cable number (accepted but not used by the current modes)")
	cmd.Flags().Uint16Var(&cfg.GroupFilter, "group-filter", cfg.GroupFilter, "bitmap of UMP groups for legacy output (accepted but not used by the current modes)")
	cmd.Flags().BoolVar(&cfg.OutputMIDI2, "output-midi2", cfg.OutputMIDI2, "upscale channel voice messages to MIDI 2 on output")
	cmd.Flags().BoolVar(&cfg.Metrics, "metrics", cfg.Metrics, "register prometheus counters for decoded/unknown/overflow events")
	cmd.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug|info|warn|error")
	cmd.Flags().IntVar(&instances, "instances", 1, "number of independent translator instances to fan the input out to")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "interpret stdin as a MIDI-CI SysEx payload instead of a legacy MIDI byte stream")

	return cmd
}

func setupLogger(level string) {
	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stdout, &tint.Options{Level: slogLevel})))
}

// runTranslate fans the input byte stream out to n independently-reset
// BytesToUMP instances, joined with errgroup.Group, demonstrating that
// distinct instances are independent and may run in parallel without
// coordination. Each instance's decoded word count is logged on completion.
func runTranslate(ctx context.Context, cfg Config, r io.Reader, n int) error {
	if n < 1 {
		n = 1
	}
	input, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("midi2demo: failed to read input: %w", err)
	}

	var reg prometheus.Registerer
	var m *demoMetrics
	if cfg.Metrics {
		reg = prometheus.NewRegistry()
		m = newDemoMetrics(reg)
	}

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			return translateOne(ctx, cfg, input, i, m)
		})
	}
	return g.Wait()
}

func translateOne(ctx context.Context, cfg Config, input []byte, instance int, m *demoMetrics) error {
	t := bytestream.NewBytesToUMP(cfg.DefaultGroup)
	t.SetOutputMIDI2(cfg.OutputMIDI2)

	var words int
	for _, b := range input {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		t.Push(b)
		for {
			word, ok := t.Pop()
			if !ok {
				break
			}
			words++
			if m != nil {
				m.decoded.WithLabelValues("ump").Inc()
			}
			slog.Debug("decoded UMP word", "instance", instance, "word", fmt.Sprintf("%08X", word))
		}
	}
	slog.Info("translation complete", "instance", instance, "bytes_in", len(input), "words_out", words)
	return nil
}

// runCI feeds stdin (already stripped of any outer transport framing) into
// a single CI dispatcher backed by a fresh MUIDRegistry, logging the
// message kinds that demoCIHandlers overrides.
func runCI(ctx context.Context, cfg Config, r io.Reader) error {
	var m *demoMetrics
	if cfg.Metrics {
		m = newDemoMetrics(prometheus.NewRegistry())
	}

	registry := ci.NewMUIDRegistry()
	h := &demoCIHandlers{registry: registry, metrics: m, group: cfg.DefaultGroup}
	d := ci.NewDispatcher(cfg.DefaultGroup, h, registry.CheckMUID)

	br := bufio.NewReader(r)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("midi2demo: failed to read input: %w", err)
		}
		d.Push(b)
	}
	return nil
}

// demoCIHandlers logs discovery, discovery reply, profile inquiry reply and
// property-exchange messages at Info level (every other decoded kind falls
// through to NullHandlers and is not logged) and tracks a Discovery's source
// MUID in the registry so a later message addressed to it passes the
// default check_muid.
type demoCIHandlers struct {
	ci.NullHandlers
	registry *ci.MUIDRegistry
	metrics  *demoMetrics
	group    uint8
}

func (h *demoCIHandlers) count(family string) {
	if h.metrics != nil {
		h.metrics.decoded.WithLabelValues(family).Inc()
	}
}

func (h *demoCIHandlers) Discovery(hdr ci.Header, msg ci.Discovery) {
	h.count("ci_discovery")
	if h.registry != nil {
		h.registry.Observe(h.group, hdr.SourceMUID)
	}
	slog.Info("ci discovery", "source_muid", hdr.SourceMUID, "manufacturer", msg.Manufacturer)
}

func (h *demoCIHandlers) DiscoveryReply(hdr ci.Header, msg ci.DiscoveryReply) {
	h.count("ci_discovery_reply")
	slog.Info("ci discovery_reply", "source_muid", hdr.SourceMUID, "manufacturer", msg.Manufacturer)
}

func (h *demoCIHandlers) ProfileInquiryReply(hdr ci.Header, msg ci.ProfileInquiryReply) {
	h.count("ci_profile_inquiry_reply")
	slog.Info("ci profile_inquiry_reply", "enabled", len(msg.Enabled), "disabled", len(msg.Disabled))
}

func (h *demoCIHandlers) PropertyExchange(hdr ci.Header, msg ci.PropertyExchangeMessage) {
	h.count("ci_property_exchange")
	slog.Info("ci property_exchange", "kind", msg.Kind, "request_id", msg.RequestID)
}

func (h *demoCIHandlers) Unknown(hdr ci.Header) {
	if h.metrics != nil {
		h.metrics.unknown.Inc()
	}
	slog.Warn("ci unknown message kind", "kind", hdr.Kind)
}

func (h *demoCIHandlers) BufferOverflow() {
	if h.metrics != nil {
		h.metrics.bufferOverflow.Inc()
	}
	slog.Error("ci scratch buffer overflow, discarding to next header")
}
