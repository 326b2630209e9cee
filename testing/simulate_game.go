// Command simulate_game autoplays a fixed-seed campaign against the engine
// with no terminal attached. It exists for eyeballing balance changes: run it,
// read the transcript, diff the final situation report.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kmazurek/coldfront/internal/command"
	"github.com/kmazurek/coldfront/internal/docs"
	"github.com/kmazurek/coldfront/internal/engine"
	"github.com/kmazurek/coldfront/internal/models"
	"github.com/kmazurek/coldfront/internal/rng"
)

const maxTurns = 20

// script is a deliberately mixed playbook: intel work early, containment in
// the middle, the Project when things look calm.
var script = []string{
	"consult sokolova",
	"investigate",
	"decrypt DOC-0000",
	"contain",
	"trace volkov",
	"investigate",
	"consult reyes",
	"contain",
	"investigate",
	"stand-down",
	"interrogate sokolova",
	"contain",
	"investigate",
	"contain",
	"investigate",
	"stand-down",
	"contain",
	"investigate",
	"contain",
	"stand-down",
	"contain",
	"stand-down",
	"contain",
	"stand-down",
	"contain",
}

func main() {
	seed := flag.Int64("seed", 1983, "simulation seed")
	flag.Parse()

	eng := engine.New(rng.New(*seed), docs.NewProcedural())
	next := 0

	fmt.Printf("=== AUTOPLAY seed=%d ===\n", *seed)
	for eng.TurnCount < maxTurns {
		eng.StartTurn()
		fmt.Printf("\n--- Day %d (intel=%d, docs=%d) ---\n",
			eng.TurnCount, eng.MaxIntelPoints, len(eng.PendingDocuments))

		// First decryptable document stands in for the scripted DOC-0000.
		for !play(eng, &next) {
		}

		if eng.State.RedPhoneActive {
			fmt.Println(">>> RED PHONE <<<")
			for _, l := range eng.ResolveCrisis("2") {
				fmt.Println(l)
			}
		}
		if eng.State.IsTerminal() || eng.State.SecretWeaponProgress >= 1.0 {
			break
		}
	}

	fmt.Printf("\n=== CAMPAIGN OVER: %s after %d day(s) ===\n", outcome(eng), eng.TurnCount)

	snap := &models.Snapshot{
		Turn:      eng.TurnCount,
		State:     eng.State,
		Documents: eng.PendingDocuments,
	}
	if err := models.WriteSnapshot(os.Stdout, snap); err != nil {
		log.Fatalf("writing snapshot: %v", err)
	}
}

// play executes the next scripted directive and reports whether it ended the
// day. Scripted document targets are rewritten to a real pending id.
func play(eng *engine.Engine, next *int) bool {
	line := "contain"
	if *next < len(script) {
		line = script[*next]
		*next++
	}

	d, err := command.Parse(line)
	if err != nil {
		log.Fatalf("scripted input %q: %v", line, err)
	}
	if dec, ok := d.(engine.Decrypt); ok {
		dec.ID = firstEncryptedID(eng)
		d = dec
	}

	fmt.Printf("> %s\n", line)
	res := eng.Resolve(d)
	for _, l := range res.Lines {
		fmt.Println(l)
	}
	return res.TurnEnded
}

func firstEncryptedID(eng *engine.Engine) string {
	for _, d := range eng.PendingDocuments {
		if d.IsEncrypted {
			return d.ID
		}
	}
	if len(eng.PendingDocuments) > 0 {
		return eng.PendingDocuments[0].ID
	}
	return "DOC-0000"
}

func outcome(eng *engine.Engine) string {
	s := eng.State
	switch {
	case s.SecretWeaponProgress >= 1.0:
		return "THE PROJECT AWAKENED"
	case s.GlobalTension >= 1.0:
		return "NUCLEAR EXCHANGE"
	case s.DomesticStability <= 0.0:
		return "GOVERNMENT COLLAPSE"
	default:
		return "CRISIS SURVIVED"
	}
}
