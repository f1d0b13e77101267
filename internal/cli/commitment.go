package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/yakusoku/internal/models"
	"github.com/julianstephens/yakusoku/internal/validation"
)

type AddCmd struct {
	Title    string `arg:"" optional:"" help:"Commitment title. Omit to fill in interactively."`
	Pros     string `help:"Why keeping this commitment matters."`
	Cons     string `help:"What breaking it costs."`
	IfThen   string `name:"if-then" help:"If-then implementation strategy."`
	Priority int    `short:"p" help:"Display priority (lower sorts first)." default:"0"`
}

func (c *AddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	// No title on the command line: open the interactive form.
	if c.Title == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Commitment").
					Description("What are you promising yourself?").
					Value(&c.Title).
					Validate(func(s string) error {
						_, err := validation.Title(s)
						return err
					}),
				huh.NewText().
					Title("Pros").
					Description("Why does keeping it matter? (optional)").
					Value(&c.Pros),
				huh.NewText().
					Title("Cons").
					Description("What does breaking it cost? (optional)").
					Value(&c.Cons),
				huh.NewInput().
					Title("If-then strategy").
					Description("e.g. \"If it's 7am, then I put on my running shoes\" (optional)").
					Value(&c.IfThen),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	title, err := validation.Title(c.Title)
	if err != nil {
		return err
	}

	commitment := models.Commitment{
		ID:        uuid.NewString(),
		Title:     title,
		Pros:      validation.OptionalText(c.Pros),
		Cons:      validation.OptionalText(c.Cons),
		IfThen:    validation.OptionalText(c.IfThen),
		Priority:  c.Priority,
		CreatedAt: ctx.Now(),
	}
	if err := ctx.Store.AddCommitment(commitment); err != nil {
		return err
	}

	fmt.Printf("Added commitment: %s (ID: %s)\n", title, commitment.ID)
	return nil
}

type ListCmd struct {
	All bool `short:"a" help:"Include archived commitments."`
}

func (c *ListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	commitments, err := ctx.Store.ListCommitments(c.All)
	if err != nil {
		return err
	}
	if len(commitments) == 0 {
		fmt.Println("No commitments yet. Add one with 'yakusoku add'.")
		return nil
	}

	for _, cm := range commitments {
		marker := " "
		if cm.ArchivedAt != nil {
			marker = "A"
		}
		fmt.Printf("%s %-36s  %s\n", marker, cm.ID, cm.Title)
		if cm.IfThen != nil {
			fmt.Printf("  %38s%s\n", "", *cm.IfThen)
		}
	}
	return nil
}

type EditCmd struct {
	Commitment string `arg:"" help:"Commitment ID or title."`
	Title      string `help:"New title."`
	Pros       string `help:"New pros text."`
	Cons       string `help:"New cons text."`
	IfThen     string `name:"if-then" help:"New if-then strategy."`
	Priority   *int   `short:"p" help:"New display priority."`
}

func (c *EditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	commitment, err := resolveCommitment(ctx, c.Commitment)
	if err != nil {
		return err
	}

	if c.Title != "" {
		title, err := validation.Title(c.Title)
		if err != nil {
			return err
		}
		commitment.Title = title
	}
	if c.Pros != "" {
		commitment.Pros = validation.OptionalText(c.Pros)
	}
	if c.Cons != "" {
		commitment.Cons = validation.OptionalText(c.Cons)
	}
	if c.IfThen != "" {
		commitment.IfThen = validation.OptionalText(c.IfThen)
	}
	if c.Priority != nil {
		commitment.Priority = *c.Priority
	}

	if err := ctx.Store.UpdateCommitment(commitment); err != nil {
		return err
	}
	fmt.Printf("Updated commitment: %s\n", commitment.Title)
	return nil
}

type ArchiveCmd struct {
	Commitment string `arg:"" help:"Commitment ID or title."`
}

func (c *ArchiveCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	commitment, err := resolveCommitment(ctx, c.Commitment)
	if err != nil {
		return err
	}
	if err := ctx.Store.ArchiveCommitment(commitment.ID); err != nil {
		return err
	}
	fmt.Printf("Archived: %s (history kept)\n", commitment.Title)
	return nil
}

type UnarchiveCmd struct {
	Commitment string `arg:"" help:"Commitment ID or title."`
}

func (c *UnarchiveCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	commitment, err := resolveCommitment(ctx, c.Commitment)
	if err != nil {
		return err
	}
	if err := ctx.Store.UnarchiveCommitment(commitment.ID); err != nil {
		return err
	}
	fmt.Printf("Unarchived: %s\n", commitment.Title)
	return nil
}

type DeleteCmd struct {
	Commitment string `arg:"" help:"Commitment ID or title."`
	Force      bool   `short:"f" help:"Skip the confirmation prompt."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	commitment, err := resolveCommitment(ctx, c.Commitment)
	if err != nil {
		return err
	}

	if !c.Force {
		var confirmed bool
		prompt := huh.NewConfirm().
			Title(fmt.Sprintf("Delete %q and its entire check-in history?", commitment.Title)).
			Description("This cannot be undone. Use 'archive' to hide it while keeping history.").
			Value(&confirmed)
		if err := prompt.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Delete cancelled.")
			return nil
		}
	}

	if err := ctx.Ledger.DeleteCommitment(commitment.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted: %s\n", commitment.Title)
	return nil
}
