// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the bubbletea host of the form engine: a menu of catalog
// forms, one generic page per form and listing pages for the destinations
// forms navigate to after a successful submission.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-form-keeper/internal/catalog"
	"github.com/MKhiriev/go-form-keeper/internal/config"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/service"
	"github.com/MKhiriev/go-form-keeper/models"
)

// TUI builds the pages and runs the bubbletea program.
type TUI struct {
	services  *service.ClientServices
	catalog   *catalog.Catalog
	cfg       config.Forms
	clock     clock.Clock
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	// ServerVersion is shown next to the build info when known.
	ServerVersion string
}

func New(services *service.ClientServices, cat *catalog.Catalog, cfg config.Forms, c clock.Clock, buildInfo models.AppBuildInfo, l *logger.Logger) *TUI {
	if c == nil {
		c = clock.New()
	}
	return &TUI{
		services:  services,
		catalog:   cat,
		cfg:       cfg,
		clock:     c,
		buildInfo: buildInfo,
		logger:    l,
	}
}

// Run blocks until the user quits. It returns ErrUserQuit on ctrl+c.
func (t *TUI) Run(ctx context.Context) error {
	nav := newProgramNavigator()
	root, err := t.buildRoot(ctx, nav)
	if err != nil {
		return err
	}

	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))
	nav.bind(program.Send)

	finalModel, err := program.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) buildRoot(ctx context.Context, nav *programNavigator) (RootModel, error) {
	pages := make(map[string]tea.Model)
	var items []menuItem
	destinations := make(map[string][]string)
	var destinationOrder []string

	for _, id := range t.catalog.IDs() {
		def, err := t.catalog.Definition(id)
		if err != nil {
			return RootModel{}, err
		}
		f, err := t.catalog.NewForm(id)
		if err != nil {
			return RootModel{}, fmt.Errorf("build form %s: %w", id, err)
		}

		cfg := def.SubmissionConfig(t.cfg.SubmitTimeout, t.cfg.NavigateDelay)
		pages[formPage(id)] = NewFormModel(ctx, def.DisplayName(), f, cfg, t.services.Submitter, nav, t.clock, t.logger)
		items = append(items, menuItem{title: def.DisplayName(), page: formPage(id)})

		if def.Destination == "" || def.Destination == "home" {
			continue
		}
		if _, seen := destinations[def.Destination]; !seen {
			destinationOrder = append(destinationOrder, def.Destination)
		}
		destinations[def.Destination] = append(destinations[def.Destination], id)
	}

	for _, dest := range destinationOrder {
		title := titleCase(dest)
		pages[historyPage(dest)] = NewHistoryModel(ctx, title, dest, destinations[dest], t.services.History)
		nav.register(historyPage(dest))
		items = append(items, menuItem{title: title, page: historyPage(dest)})
	}

	pages[menuPage] = NewMenuModel(items)
	return NewRootModel(pages, menuPage, t.buildInfo, t.ServerVersion), nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
