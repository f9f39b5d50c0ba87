package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muurk/scrollprompt/internal/config"
	"github.com/muurk/scrollprompt/internal/prompt"
)

// Prompt source flags shared by run, simulate and serve
var (
	workflowName string
	promptTitle  string
	promptText   string
	confirmLines []string
)

func addPromptFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&workflowName, "workflow", "w", "", "Workflow to run from the script")
	cmd.Flags().StringVar(&promptTitle, "title", "", "Title of a single prompt (instead of a script)")
	cmd.Flags().StringVar(&promptText, "text", "", "Text of a single prompt (instead of a script)")
	cmd.Flags().StringSliceVar(&confirmLines, "confirm", nil, "Lines shown before the accept/reject choice")
}

// promptSource is what a command will show: one or more workflows and the
// profile the script asked for
type promptSource struct {
	script  *config.Script
	profile string
}

// loadPrompts builds the prompt source from a script argument or the
// --title/--text/--confirm flags
func loadPrompts(args []string) (*promptSource, error) {
	if len(args) > 0 {
		if promptTitle != "" || promptText != "" {
			return nil, errors.New("use either a script or --title/--text, not both")
		}
		script, err := config.LoadScript(args[0])
		if err != nil {
			return nil, err
		}
		return &promptSource{script: script, profile: script.Profile}, nil
	}

	if promptText == "" && len(confirmLines) == 0 {
		return nil, errors.New("nothing to show: pass a script or --text/--confirm")
	}

	w := config.Workflow{Name: "prompt", Confirm: confirmLines}
	if promptText != "" {
		w.Sessions = []config.SessionSpec{{Title: promptTitle, Text: promptText}}
	}
	script := &config.Script{Workflows: []config.Workflow{w}}
	if err := script.Validate(); err != nil {
		return nil, err
	}
	return &promptSource{script: script}, nil
}

// layout resolves --profile, then the script's profile, then the registry
// default
func (p *promptSource) layout() (prompt.Layout, string, error) {
	registry, err := config.LoadRegistry(configPath)
	if err != nil {
		return prompt.Layout{}, "", err
	}

	name := profileName
	if name == "" {
		name = p.profile
	}
	if name == "" {
		name = registry.DefaultProfileName()
	}

	layout, err := registry.Layout(name)
	if err != nil {
		return prompt.Layout{}, "", err
	}
	return layout, name, nil
}

// workflow returns the workflow named by --workflow, or the only one
func (p *promptSource) workflow() (*config.Workflow, error) {
	if workflowName != "" {
		return p.script.Find(workflowName)
	}
	if len(p.script.Workflows) == 1 {
		return &p.script.Workflows[0], nil
	}
	return nil, fmt.Errorf("script has %d workflows, pick one with --workflow (%v)", len(p.script.Workflows), p.script.Names())
}

// chooseWorkflow is like workflow but asks on the device when the script
// has several and none was named
func (p *promptSource) chooseWorkflow(ctx context.Context, layout prompt.Layout, sink prompt.DisplaySink, source prompt.InputSource) (*config.Workflow, error) {
	if workflowName != "" || len(p.script.Workflows) == 1 {
		return p.workflow()
	}

	items := make([]prompt.MenuItem[int], len(p.script.Workflows))
	for i, w := range p.script.Workflows {
		items[i] = prompt.MenuItem[int]{Label: w.Name, Value: i}
	}
	menu, err := prompt.NewListMenu(items...)
	if err != nil {
		return nil, err
	}

	index, err := prompt.RunMenu(ctx, layout, "Workflow", menu, sink, source)
	if err != nil {
		return nil, err
	}
	return &p.script.Workflows[index], nil
}

// runWorkflow runs w against a sink and source
func runWorkflow(ctx context.Context, layout prompt.Layout, w *config.Workflow, sink prompt.DisplaySink, source prompt.InputSource) (prompt.Decision, error) {
	decision, err := prompt.RunWorkflow(ctx, layout, w.PromptSessions(), w.Confirm, sink, source)
	if err != nil {
		return prompt.Rejected, fmt.Errorf("workflow %s: %w", w.Name, err)
	}
	return decision, nil
}
