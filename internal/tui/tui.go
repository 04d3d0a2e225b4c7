// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal console: the client list with its
// create/edit form, and the accounts modal for one client.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/client-admin/internal/adapter"
	"github.com/MKhiriev/client-admin/internal/logger"
	"github.com/MKhiriev/client-admin/internal/manager"
	"github.com/MKhiriev/client-admin/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	remote    adapter.RemoteService
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(remote adapter.RemoteService, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if remote == nil {
		return nil, errors.New("remote service is required")
	}
	return &TUI{remote: remote, buildInfo: buildInfo, logger: logger}, nil
}

// Run shows the console until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	clients := manager.NewClientManager(t.remote, t.logger)
	model := newConsoleModel(clients, t.buildInfo)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(consoleModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
