package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/MKhiriev/items-api/internal/adapter"
	"github.com/MKhiriev/items-api/internal/logger"
	"github.com/MKhiriev/items-api/models"
)

type App struct {
	items  adapter.ItemsAdapter
	out    io.Writer
	logger *logger.Logger
}

func NewApp(items adapter.ItemsAdapter, out io.Writer, logger *logger.Logger) (*App, error) {
	if items == nil {
		return nil, ErrNoAdapter
	}
	return &App{items: items, out: out, logger: logger}, nil
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}

	cmd, rest := args[0], args[1:]
	a.logger.Debug().Str("command", cmd).Strs("args", rest).Msg("running command")

	switch cmd {
	case "list":
		items, err := a.items.List(ctx)
		if err != nil {
			return err
		}
		if items == nil {
			items = []models.ItemResponse{}
		}
		return a.print(items)
	case "get":
		if len(rest) != 1 {
			return ErrUsage
		}
		item, err := a.items.Get(ctx, rest[0])
		if err != nil {
			return err
		}
		return a.print(item)
	case "create":
		return a.create(ctx, rest)
	case "update":
		return a.update(ctx, rest)
	case "delete":
		if len(rest) != 1 {
			return ErrUsage
		}
		if err := a.items.Delete(ctx, rest[0]); err != nil {
			return err
		}
		_, err := fmt.Fprintf(a.out, "deleted %q\n", rest[0])
		return err
	case "health":
		health, err := a.items.Health(ctx)
		if err != nil {
			return err
		}
		return a.print(health)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
}

func (a *App) create(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}

	input := models.NewItemInput{Name: args[0]}
	if len(args) == 2 {
		input.Details = &args[1]
	}

	item, err := a.items.Create(ctx, input)
	if err != nil {
		return err
	}
	return a.print(item)
}

// update accepts the item name first, followed by -name and -details.
// Only flags that were passed end up in the request body.
func (a *App) update(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	name := args[0]

	var newName, details string
	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&newName, "name", "", "new item name")
	fs.StringVar(&details, "details", "", "new item details")
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return ErrUsage
	}

	var input models.UpdateItemInput
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			input.Name = &newName
		case "details":
			input.Details = &details
		}
	})
	if input.Name == nil && input.Details == nil {
		return ErrNothingToDo
	}

	item, err := a.items.Update(ctx, name, input)
	if err != nil {
		return err
	}
	return a.print(item)
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
