// Command dnsdump reads one DNS packet from a file and prints the decoded
// message. It performs no network I/O: hosts hand it raw buffers, the way
// any consumer of the codec would.
//
// Usage:
//
//	dnsdump <packet-file>
//
// Configuration comes from DNSWIRE_* environment variables; see
// internal/config for the knobs (input format, decode mode, logging).
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/haukened/dnswire/codec"
	"github.com/haukened/dnswire/common/log"
	"github.com/haukened/dnswire/domain"
	"github.com/haukened/dnswire/internal/config"
	"github.com/haukened/dnswire/wireref"
)

const appName = "dnsdump"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: configuration error: %v\n", appName, err)
		os.Exit(1)
	}

	logger, err := log.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: logging error: %v\n", appName, err)
		os.Exit(1)
	}

	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <packet-file>\n", appName)
		os.Exit(2)
	}

	buf, err := readPacket(os.Args[1], cfg.Format)
	if err != nil {
		logger.Error(map[string]any{"file": os.Args[1], "error": err}, "reading packet")
		os.Exit(1)
	}

	msg, err := decode(buf, cfg.Mode)
	if err != nil {
		logger.Error(map[string]any{"mode": cfg.Mode, "error": err}, "decoding message")
		os.Exit(1)
	}

	dump(logger, buf, msg)
}

// readPacket loads the packet bytes, undoing hex encoding when asked.
func readPacket(path, format string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if format == "raw" {
		return raw, nil
	}
	compact := strings.Join(strings.Fields(string(raw)), "")
	return hex.DecodeString(compact)
}

// decode runs the selected decode path. The ref path exists to show both
// strategies agree; its output is materialized for printing either way.
func decode(buf []byte, mode string) (domain.Message, error) {
	if mode == "ref" {
		ref, err := wireref.DecodeMessageRef(buf)
		if err != nil {
			return domain.Message{}, err
		}
		return ref.Decode(buf)
	}
	return codec.DecodeMessage(buf)
}

func dump(logger log.Logger, buf []byte, msg domain.Message) {
	h := msg.Header
	logger.Info(map[string]any{
		"id":     h.ID,
		"qr":     h.Flags.QR,
		"opcode": h.Flags.OpCode.String(),
		"rcode":  h.Flags.RCode.String(),
		"aa":     h.Flags.AA,
		"tc":     h.Flags.TC,
		"rd":     h.Flags.RD,
		"ra":     h.Flags.RA,
		"qd":     h.QDCount,
		"an":     h.ANCount,
		"ns":     h.NSCount,
		"ar":     h.ARCount,
	}, "header")

	for i, q := range msg.Questions {
		logger.Info(map[string]any{
			"n":     i,
			"name":  displayName(buf, q.Name),
			"type":  q.Type.String(),
			"class": q.Class.String(),
		}, "question")
	}

	sections := map[string][]domain.ResourceRecord{
		"answer":     msg.Answers,
		"authority":  msg.Authority,
		"additional": msg.Additional,
	}
	for section, records := range sections {
		for i, r := range records {
			logger.Info(map[string]any{
				"n":        i,
				"name":     displayName(buf, r.Name),
				"type":     r.Type.String(),
				"class":    r.Class.String(),
				"ttl":      r.TTL,
				"rdlength": r.RDLength,
				"rdata":    hex.EncodeToString(r.Data),
			}, section)
		}
	}
}

// displayName resolves compression pointers for display, falling back to
// the unresolved rendering if the chain is malformed.
func displayName(buf []byte, name domain.Name) string {
	var parts []string
	for _, e := range name {
		switch e.Kind {
		case domain.KindLabel:
			parts = append(parts, string(e.Data))
		case domain.KindPointer:
			suffix, err := codec.ResolveName(buf, int(e.Pointer))
			if err != nil {
				return name.String()
			}
			parts = append(parts, suffix)
		}
	}
	return strings.Join(parts, ".")
}
