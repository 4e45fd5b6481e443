package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-props/internal/demo"
	"github.com/goliatone/go-props/pkg/attr"
	"github.com/goliatone/go-props/pkg/model"
	"github.com/goliatone/go-props/pkg/render"
	"github.com/goliatone/go-props/pkg/scene"
	"github.com/goliatone/go-props/pkg/schema"
)

func main() {
	scenePath := flag.String("scene", "", "scene YAML to apply before snapshotting")
	format := flag.String("format", "json", "output format: json or html")
	output := flag.String("output", "", "output file (stdout if empty)")
	dirty := flag.Bool("dirty", false, "emit the dirty-only snapshot")
	contract := flag.Bool("schema", false, "print the OpenAPI snapshot contract and exit")
	interactive := flag.Bool("interactive", false, "mutate attributes through prompts before snapshotting")
	flag.Parse()

	circle, err := demo.Circle.Instantiate()
	if err != nil {
		log.Fatalf("Failed to instantiate model: %v", err)
	}

	if *contract {
		emit(*output, renderContract(circle))
		return
	}

	if *scenePath != "" {
		raw, err := os.ReadFile(*scenePath)
		if err != nil {
			log.Fatalf("Failed to read scene: %v", err)
		}
		doc, err := scene.Load(raw)
		if err != nil {
			log.Fatalf("Failed to parse scene: %v", err)
		}
		if err := doc.Apply(map[string]*model.Model{"circle": circle}); err != nil {
			log.Fatalf("Failed to apply scene: %v", err)
		}
	}

	if *interactive {
		if err := promptLoop(circle); err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}
	}

	snap := circle.FullSnapshot()
	if *dirty {
		snap = circle.DirtySnapshot()
	}
	emit(*output, renderSnapshot(circle, snap, *format))
}

func renderSnapshot(m *model.Model, snap model.Snapshot, format string) []byte {
	switch format {
	case "json":
		payload, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode snapshot: %v", err)
		}
		return payload
	case "html":
		r, err := render.New()
		if err != nil {
			log.Fatalf("Failed to build renderer: %v", err)
		}
		page, err := r.Snapshot(m.Type(), snap)
		if err != nil {
			log.Fatalf("Failed to render snapshot: %v", err)
		}
		return []byte(page)
	default:
		log.Fatalf("Unknown format %q", format)
		return nil
	}
}

func renderContract(m *model.Model) []byte {
	contract, err := schema.FromModel(m)
	if err != nil {
		log.Fatalf("Failed to build contract: %v", err)
	}
	payload, err := json.MarshalIndent(contract, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode contract: %v", err)
	}
	return payload
}

// promptLoop repeatedly asks for an attribute and a value until the user
// picks "done". Values are JSON literals; bare words count as strings.
func promptLoop(m *model.Model) error {
	const done = "(done)"
	choices := append(m.Names(), done)

	for {
		var name string
		if err := survey.AskOne(&survey.Select{
			Message: "Attribute to set:",
			Options: choices,
		}, &name); err != nil {
			return err
		}
		if name == done {
			return nil
		}

		var raw string
		if err := survey.AskOne(&survey.Input{
			Message: fmt.Sprintf("Value for %s (JSON or bare string):", name),
		}, &raw); err != nil {
			return err
		}

		attribute, _ := m.Attribute(name)
		setter, ok := attribute.(attr.AnySetter)
		if !ok {
			fmt.Printf("attribute %s is read-only\n", name)
			continue
		}
		if err := setter.SetAny(parseValue(raw)); err != nil {
			fmt.Printf("rejected: %v\n", err)
		}
	}
}

func parseValue(raw string) any {
	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return raw
	}
	return value
}

func emit(path string, payload []byte) {
	if path != "" {
		if err := os.WriteFile(path, payload, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Snapshot written to %s\n", path)
		return
	}
	fmt.Println(string(payload))
}
