package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nroshal/tastebook/internal/service"
	"github.com/nroshal/tastebook/models"
)

const listPageSize = 15

// difficulty filter cycle: "" means no filter
var difficultyCycle = []string{"", "Easy", "Medium", "Hard"}

// ListModel is the recipe browsing page: a filterable, paged list of
// published recipes. When the server is unreachable the service layer
// serves it from the local cache, so the page keeps working offline.
type ListModel struct {
	ctx     context.Context
	recipes service.ClientRecipeService

	items         []models.Recipe
	total         int
	skip          int
	idx           int
	difficultyIdx int
	search        textinput.Model
	searching     bool
	loading       bool
	spinner       spinner.Model
	errMsg        string
}

func NewListModel(ctx context.Context, recipes service.ClientRecipeService) *ListModel {
	search := textinput.New()
	search.Placeholder = "search recipes"
	search.CharLimit = 100
	search.Width = 40

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &ListModel{
		ctx:     ctx,
		recipes: recipes,
		search:  search,
		spinner: s,
	}
}

func (m *ListModel) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recipesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.resp.Items
		m.total = msg.resp.Total
		if m.idx >= len(m.items) {
			m.idx = len(m.items) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.searching {
		switch keyMsg.String() {
		case "enter":
			m.searching = false
			m.search.Blur()
			m.skip = 0
			m.idx = 0
			return m, m.reload()
		case "esc":
			m.searching = false
			m.search.Blur()
			m.search.SetValue("")
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "esc":
		return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "enter":
		if m.idx < 0 || m.idx >= len(m.items) {
			return m, nil
		}
		recipeID := m.items[m.idx].ID
		return m, func() tea.Msg {
			return NavigateTo{Page: "detail", Payload: openRecipeMsg{recipeID: recipeID, from: "list"}}
		}
	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink
	case "f":
		m.difficultyIdx = (m.difficultyIdx + 1) % len(difficultyCycle)
		m.skip = 0
		m.idx = 0
		return m, m.reload()
	case "n":
		if m.skip+listPageSize < m.total {
			m.skip += listPageSize
			m.idx = 0
			return m, m.reload()
		}
	case "p":
		if m.skip > 0 {
			m.skip -= listPageSize
			if m.skip < 0 {
				m.skip = 0
			}
			m.idx = 0
			return m, m.reload()
		}
	case "r":
		return m, m.reload()
	}

	return m, nil
}

func (m *ListModel) View() string {
	var b strings.Builder

	searchLine := "Search: "
	if m.searching {
		searchLine += "[" + m.search.View() + "]"
	} else if m.search.Value() != "" {
		searchLine += m.search.Value()
	} else {
		searchLine += "-"
	}
	if d := difficultyCycle[m.difficultyIdx]; d != "" {
		searchLine += "   Difficulty: " + d
	}
	b.WriteString(searchLine)
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...\n")
	case len(m.items) == 0:
		b.WriteString("No recipes found\n")
	default:
		for i, recipe := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-34s %-12s %-8s %s\n",
				cursor,
				fitText(recipe.Title, 34),
				fitText(recipe.CuisineType, 12),
				recipe.Difficulty,
				formatMinutes(recipe.TotalTimeMin()),
			))
		}
		page := m.skip/listPageSize + 1
		pages := (m.total + listPageSize - 1) / listPageSize
		if pages < 1 {
			pages = 1
		}
		b.WriteString(fmt.Sprintf("\nPage %d/%d (%d recipes)", page, pages, m.total))
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
	}

	return renderPage("BROWSE RECIPES", strings.TrimRight(b.String(), "\n"),
		"enter: open │ /: search │ f: difficulty │ n/p: page │ r: refresh │ esc: menu")
}

func (m *ListModel) reload() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *ListModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	recipes := m.recipes
	filter := models.RecipeFilter{
		Query:      strings.TrimSpace(m.search.Value()),
		Difficulty: difficultyCycle[m.difficultyIdx],
		Skip:       m.skip,
		Limit:      listPageSize,
	}

	return func() tea.Msg {
		resp, err := recipes.List(ctx, filter)
		return recipesLoadedMsg{resp: resp, err: err}
	}
}
