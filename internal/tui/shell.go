// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Othmane El Bekkali

package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oelbekkali/colisops/internal/console"
	"github.com/oelbekkali/colisops/internal/service"
	"github.com/oelbekkali/colisops/internal/session"
	"github.com/oelbekkali/colisops/models"
)

// board is one tab of the shell: a title, a table layout and the
// screen controller behind it.
type board struct {
	title   string
	columns []table.Column
	load    func(context.Context) error
	rows    func() []table.Row
}

// shellModel is the tabbed main screen. Which boards it carries
// depends on the authenticated role: admins manage the network
// (agencies, vehicles, employees), operators manage the shipments
// (couriers, deliveries, invoices).
type shellModel struct {
	ctx      context.Context
	user     models.User
	screens  console.Screens
	services *service.Services

	boards  []board
	active  int
	table   table.Model
	loading bool
	status  string
	errMsg  string
	logout  bool
}

func newShellModel(ctx context.Context, user models.User, screens console.Screens, services *service.Services) shellModel {
	m := shellModel{
		ctx:      ctx,
		user:     user,
		screens:  screens,
		services: services,
		loading:  true,
	}

	if session.HasRole(user, models.RoleAdmin) {
		m.boards = adminBoards(screens)
	} else {
		m.boards = operatorBoards(screens)
	}

	m.table = newBoardTable(m.boards[0], nil)
	return m
}

func adminBoards(s console.Screens) []board {
	return []board{
		{
			title: "agencies",
			columns: []table.Column{
				{Title: "ID", Width: 4},
				{Title: "Name", Width: 28},
				{Title: "Address", Width: 36},
				{Title: "Staff", Width: 6},
				{Title: "Fleet", Width: 6},
			},
			load: s.Agencies.Load,
			rows: func() []table.Row {
				var rows []table.Row
				for _, a := range s.Agencies.Visible() {
					rows = append(rows, table.Row{
						strconv.FormatInt(a.ID, 10), a.Name, a.Address,
						strconv.Itoa(len(a.Employees)), strconv.Itoa(len(a.Vehicles)),
					})
				}
				return rows
			},
		},
		{
			title: "vehicles",
			columns: []table.Column{
				{Title: "Registration", Width: 14},
				{Title: "Type", Width: 12},
				{Title: "Capacity", Width: 10},
				{Title: "Agency", Width: 28},
				{Title: "Assigned to", Width: 20},
			},
			load: s.Vehicles.Load,
			rows: func() []table.Row {
				var rows []table.Row
				for _, v := range s.Vehicles.Visible() {
					agency := ""
					if v.Agency != nil {
						agency = v.Agency.Name
					}
					assigned := "-"
					if v.Transporter != nil {
						assigned = v.Transporter.Name + " " + v.Transporter.Surname
					}
					rows = append(rows, table.Row{
						v.Registration, v.Type,
						strconv.FormatFloat(v.Capacity, 'f', 0, 64) + " kg",
						agency, assigned,
					})
				}
				return rows
			},
		},
		{
			title: "employees",
			columns: []table.Column{
				{Title: "CIN", Width: 10},
				{Title: "Name", Width: 24},
				{Title: "Role", Width: 14},
				{Title: "Agency", Width: 28},
				{Title: "Account", Width: 24},
			},
			load: s.Employees.Load,
			rows: func() []table.Row {
				var rows []table.Row
				for _, e := range s.Employees.Visible() {
					role := ""
					if e.Role != nil {
						role = string(e.Role.Name)
					}
					agency := ""
					if e.Agency != nil {
						agency = e.Agency.Name
					}
					account := "-"
					if e.User != nil {
						account = e.User.Email
					}
					rows = append(rows, table.Row{e.CIN, e.Name + " " + e.Surname, role, agency, account})
				}
				return rows
			},
		},
	}
}

func operatorBoards(s console.Screens) []board {
	return []board{
		{
			title: "couriers",
			columns: []table.Column{
				{Title: "ID", Width: 4},
				{Title: "Sent", Width: 12},
				{Title: "Status", Width: 22},
				{Title: "Client", Width: 20},
				{Title: "Recipient", Width: 20},
				{Title: "Price", Width: 8},
			},
			load: s.Couriers.Load,
			rows: func() []table.Row {
				var rows []table.Row
				for _, c := range s.Couriers.Visible() {
					rows = append(rows, table.Row{
						strconv.FormatInt(c.ID, 10), c.SendDate, string(c.Status),
						c.Client.Name + " " + c.Client.Surname, c.RecipientName,
						strconv.FormatFloat(c.Price, 'f', 2, 64),
					})
				}
				return rows
			},
		},
		{
			title: "deliveries",
			columns: []table.Column{
				{Title: "ID", Width: 4},
				{Title: "Courier", Width: 8},
				{Title: "Ship date", Width: 12},
				{Title: "Vehicle", Width: 14},
				{Title: "Transporter", Width: 12},
			},
			load: s.Deliveries.Load,
			rows: func() []table.Row {
				var rows []table.Row
				for _, d := range s.Deliveries.Visible() {
					rows = append(rows, table.Row{
						strconv.FormatInt(d.ID, 10),
						strconv.FormatInt(d.CourierID, 10),
						d.ShipDate, d.VehicleID, d.TransporterID,
					})
				}
				return rows
			},
		},
		{
			title: "invoices",
			columns: []table.Column{
				{Title: "ID", Width: 4},
				{Title: "Courier", Width: 8},
				{Title: "Amount", Width: 10},
				{Title: "Issued", Width: 12},
				{Title: "Payment", Width: 10},
			},
			load: s.Invoices.Load,
			rows: func() []table.Row {
				var rows []table.Row
				for _, inv := range s.Invoices.Visible() {
					rows = append(rows, table.Row{
						strconv.FormatInt(inv.ID, 10),
						strconv.FormatInt(inv.CourierID, 10),
						strconv.FormatFloat(inv.Amount, 'f', 2, 64),
						inv.IssueDate, string(inv.PaymentStatus),
					})
				}
				return rows
			},
		},
	}
}

func newBoardTable(b board, rows []table.Row) table.Model {
	return table.New(
		table.WithColumns(b.columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(12),
	)
}

func (m shellModel) Init() tea.Cmd {
	return m.cmdLoad(m.active)
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case boardLoadedMsg:
		if msg.tab != m.active {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.table.SetRows(m.boards[m.active].rows())
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = "tracking code copied"
		return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.logout):
			m.logout = true
			return m, tea.Quit
		case key.Matches(msg, keys.nextTab):
			return m.switchTab((m.active + 1) % len(m.boards))
		case key.Matches(msg, keys.prevTab):
			return m.switchTab((m.active - 1 + len(m.boards)) % len(m.boards))
		case key.Matches(msg, keys.refresh):
			m.loading = true
			return m, m.cmdLoad(m.active)
		case key.Matches(msg, keys.copy):
			if cmd := m.cmdCopyTracking(); cmd != nil {
				return m, cmd
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m shellModel) switchTab(next int) (tea.Model, tea.Cmd) {
	m.active = next
	m.loading = true
	m.errMsg = ""
	m.status = ""
	m.table = newBoardTable(m.boards[next], nil)
	return m, m.cmdLoad(next)
}

func (m shellModel) View() string {
	var tabs []string
	for i, b := range m.boards {
		if i == m.active {
			tabs = append(tabs, activeTabStyle.Render(b.title))
		} else {
			tabs = append(tabs, tabStyle.Render(b.title))
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("colisops") + "  " + fmt.Sprintf("%s (%s)", m.user.Email, m.user.Role.Name))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(tabs, " │ "))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("loading...\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
	}

	help := "tab: next board │ r: refresh │ l: logout │ q: quit"
	if m.boards[m.active].title == "couriers" {
		help = "c: copy tracking code │ " + help
	}
	b.WriteString("\n" + helpStyle.Render(help))

	return appStyle.Render(b.String())
}

func (m shellModel) cmdLoad(tab int) tea.Cmd {
	ctx := m.ctx
	load := m.boards[tab].load
	return func() tea.Msg {
		return boardLoadedMsg{tab: tab, err: load(ctx)}
	}
}

// cmdCopyTracking resolves the selected courier's label (generating it
// on first use, the backend is idempotent per courier) and puts the
// tracking code on the system clipboard.
func (m shellModel) cmdCopyTracking() tea.Cmd {
	if m.boards[m.active].title != "couriers" {
		return nil
	}

	couriers := m.screens.Couriers.Visible()
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(couriers) {
		return nil
	}

	ctx := m.ctx
	labels := m.services.Label
	courierID := couriers[idx].ID

	return func() tea.Msg {
		label, err := labels.Generate(ctx, courierID)
		if err != nil {
			return copiedMsg{err: err}
		}
		return copiedMsg{err: clipboard.WriteAll(label.TrackingCode)}
	}
}
