package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nikolayk812/airport-services/internal/domain"
)

const (
	cardWidth    = 36
	summaryWidth = 40
)

// View implements tea.Model.
func (a *App) View() string {
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		a.renderCatalog(),
		"  ",
		a.renderSummary(),
	)

	sections := []string{a.renderHeader(), "", body}
	if a.filtering || a.filter.Value() != "" {
		sections = append(sections, a.filter.View())
	}
	if a.status != "" {
		sections = append(sections, a.styles.Success.Render(a.status))
	}
	sections = append(sections, a.styles.Help.Render(a.help.View(a.keys)))

	screen := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if a.ack != nil {
		return a.renderAcknowledgment(screen)
	}
	return screen
}

func (a *App) renderHeader() string {
	title := a.styles.Title.Render(planeGlyph + "  Airport Services")
	subtitle := a.styles.Subtitle.Render("Enhance your flight experience")
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle)
}

func (a *App) renderCatalog() string {
	if len(a.visible) == 0 {
		return a.styles.Muted.Width(cardWidth*catalogColumns).Render("No services match the filter")
	}

	var rows []string
	for start := 0; start < len(a.visible); start += catalogColumns {
		end := min(start+catalogColumns, len(a.visible))

		var cards []string
		for i := start; i < end; i++ {
			cards = append(cards, a.renderCard(a.visible[i], a.focus == FocusCatalog && i == a.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (a *App) renderCard(service domain.Service, focused bool) string {
	style := a.styles.Card
	if focused {
		style = a.styles.FocusedCard
	}

	inner := cardWidth - style.GetHorizontalFrameSize()

	heading := lipgloss.JoinHorizontal(lipgloss.Top,
		a.styles.Icon.Render(glyph(service.Icon)),
		" ",
		a.styles.Normal.Bold(true).Render(service.Name),
	)
	description := a.styles.Muted.Width(inner).Render(service.Description)

	action := "+ Add"
	if item, ok := a.cartItem(service.ID); ok {
		action = fmt.Sprintf("+ Add (%d in cart)", item.Quantity)
	}
	price := a.styles.Price.Render(service.Price.String())
	gap := max(inner-lipgloss.Width(price)-lipgloss.Width(action), 1)
	footer := price + strings.Repeat(" ", gap) + action

	return style.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, heading, description, footer),
	)
}

func (a *App) renderSummary() string {
	inner := summaryWidth - a.styles.Panel.GetHorizontalFrameSize()
	items := a.cart.Items()

	lines := []string{a.styles.Heading.Render("Order Summary")}
	if len(items) == 0 {
		lines = append(lines, a.styles.Muted.Render("No services selected"))
	}

	for i, item := range items {
		lines = append(lines, a.renderLine(item, inner, a.focus == FocusSummary && i == a.summaryCursor))
	}

	divider := a.styles.Muted.Render(strings.Repeat("─", inner))
	total := a.cart.Total().String()
	totalLine := "Total" + strings.Repeat(" ", max(inner-len("Total")-lipgloss.Width(total), 1)) +
		a.styles.Price.Bold(true).Render(total)

	lines = append(lines, "", divider, totalLine, "", a.styles.Button.Render("Place Order (p)"))

	return a.styles.Panel.Width(summaryWidth).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (a *App) renderLine(item domain.CartItem, width int, focused bool) string {
	style := a.styles.Line
	if focused {
		style = a.styles.FocusedLine
	}

	lineTotal := item.LineTotal().String()
	name := item.Service.Name + strings.Repeat(" ", max(width-lipgloss.Width(item.Service.Name)-lipgloss.Width(lineTotal), 1)) + lineTotal
	detail := fmt.Sprintf("%s x %d", item.Service.Price, item.Quantity)
	if focused {
		detail += "  " + a.styles.Danger.Render("x remove")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		style.Render(name),
		a.styles.Muted.Render(detail),
	)
}

func (a *App) renderAcknowledgment(background string) string {
	order := *a.ack

	lines := []string{
		a.styles.Success.Bold(true).Render("Order placed successfully!"),
		"",
		a.styles.Muted.Render("Order " + order.ID.String()),
	}
	for _, item := range order.Items {
		lines = append(lines, fmt.Sprintf("%d × %s  %s", item.Quantity, item.Service.Name, item.LineTotal()))
	}
	if order.IsEmpty() {
		lines = append(lines, a.styles.Muted.Render("No services selected"))
	}
	lines = append(lines, "", "Total "+a.styles.Price.Render(order.Total.String()), "", a.styles.Help.Render("press enter to continue"))

	modal := a.styles.Modal.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	if a.width == 0 || a.height == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, background, modal)
	}
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, modal)
}

func (a *App) cartItem(id string) (domain.CartItem, bool) {
	for _, item := range a.cart.Items() {
		if item.Service.ID == id {
			return item, true
		}
	}
	return domain.CartItem{}, false
}
