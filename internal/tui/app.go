// Package tui renders the carpark form in a terminal.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"carpark-finder/internal/form"
)

// App drives one form controller from terminal prompts.
type App struct {
	driver PromptDriver
	ctrl   *form.Controller
	out    io.Writer
}

// NewApp creates a terminal form around ctrl.
func NewApp(driver PromptDriver, ctrl *form.Controller, out io.Writer) *App {
	return &App{driver: driver, ctrl: ctrl, out: out}
}

// Run prompts for postcodes until the user declines another search, aborts,
// or ctx ends.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "Nearest Carpark Finder (SG)")

	for {
		postcode, err := a.driver.Input(ctx, InputConfig{
			Message:   "Enter Singapore Postcode:",
			Help:      "e.g., 039803",
			Default:   a.ctrl.Postcode(),
			Validator: form.ValidatePostcode,
		})
		if err != nil {
			return ignoreAbort(err)
		}
		a.ctrl.SetPostcode(postcode)

		fmt.Fprintln(a.out, "Searching...")
		state, err := a.ctrl.Submit(ctx, postcode)
		if err != nil {
			fmt.Fprintf(a.out, "Error: %v\n", err)
		} else {
			Render(a.out, form.NewView(postcode, state))
		}

		again, err := a.driver.Confirm(ctx, ConfirmConfig{Message: "Search again?", Default: true})
		if err != nil {
			return ignoreAbort(err)
		}
		if !again {
			return nil
		}
	}
}

func ignoreAbort(err error) error {
	if errors.Is(err, ErrAborted) {
		return nil
	}
	return err
}

// Render writes the result or error block for v. Idle and pending views
// render nothing.
func Render(w io.Writer, v form.View) {
	switch {
	case v.Error != "":
		fmt.Fprintf(w, "Error: %s\n", v.Error)
	case v.Result != nil:
		fmt.Fprintf(w, "Nearest Carpark: %s\n", v.Result.CarparkNumber)
		fmt.Fprintf(w, "Available Lots: %d / %d\n", v.Result.LotsAvailable, v.Result.TotalLots)
		fmt.Fprintf(w, "Distance: %s km\n", v.DistanceKm)
		fmt.Fprintf(w, "View on Google Maps: %s\n", v.MapURL)
	}
}
