package web

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/five82/atlas/internal/chart"
	"github.com/five82/atlas/internal/present"
	"github.com/five82/atlas/internal/restcountries"
	"github.com/five82/atlas/internal/state"
)

type rowView struct {
	present.Row
	Href     string
	Selected bool
}

type pageData struct {
	Query      string
	Loading    bool
	Failed     bool
	Message    string
	Rows       []rowView
	Detail     *present.Detail
	Fields     []present.Field
	ChartURL   string
	ChartTitle string
}

type listResponse struct {
	Query     string        `json:"query"`
	Count     int           `json:"count"`
	Total     int           `json:"total"`
	Countries []present.Row `json:"countries"`
}

type countryResponse struct {
	Detail present.Detail `json:"detail"`
	Chart  present.Chart  `json:"chart"`
}

// Index renders the explorer page. Each request derives its own filter and
// selection from the query string, so concurrent visitors never share UI
// state through the store.
func (s *Server) Index(c *fiber.Ctx) error {
	snap := s.store.Snapshot()
	query := c.Query("q")
	name := c.Query("country")

	data := pageData{Query: query}
	switch {
	case snap.Loading():
		data.Loading = true
		data.Message = present.LoadingMessage
	case snap.Failed():
		data.Failed = true
		data.Message = present.ErrorMessage
	default:
		filtered := state.FilterByName(snap.All, query)
		data.Message = present.NoResults
		for _, row := range present.Rows(filtered) {
			data.Rows = append(data.Rows, rowView{
				Row:      row,
				Href:     pageURL(query, row.Name),
				Selected: row.Name == name,
			})
		}
		if selected, ok := state.FindByName(snap.All, name); ok {
			detail := present.NewDetail(selected)
			data.Detail = &detail
			data.Fields = detail.Fields()
			data.ChartURL = chartURL(detail.Name)
			data.ChartTitle = present.NewChart(selected, state.RegionPeers(snap.All, selected, state.ChartLimit)).Title
		}
	}

	var buf bytes.Buffer
	if err := s.page.Execute(&buf, data); err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// Chart renders the go-echarts page for one country's region.
func (s *Server) Chart(c *fiber.Ctx) error {
	selected, peers, err := s.lookup(c.Query("country"))
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := chart.Render(&buf, present.NewChart(selected, peers)); err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// ListCountries returns the rows matching ?q= in list order.
func (s *Server) ListCountries(c *fiber.Ctx) error {
	snap := s.store.Snapshot()
	if err := phaseError(snap); err != nil {
		return err
	}
	query := c.Query("q")
	rows := present.Rows(state.FilterByName(snap.All, query))
	return c.JSON(listResponse{
		Query:     query,
		Count:     len(rows),
		Total:     len(snap.All),
		Countries: rows,
	})
}

// GetCountry returns one country's detail record and chart data.
func (s *Server) GetCountry(c *fiber.Ctx) error {
	selected, peers, err := s.lookup(c.Params("name"))
	if err != nil {
		return err
	}
	return c.JSON(countryResponse{
		Detail: present.NewDetail(selected),
		Chart:  present.NewChart(selected, peers),
	})
}

// Health reports the load phase.
func (s *Server) Health(c *fiber.Ctx) error {
	snap := s.store.Snapshot()
	return c.JSON(fiber.Map{
		"status":    snap.Phase.String(),
		"countries": len(snap.All),
	})
}

func (s *Server) lookup(name string) (restcountries.Country, []restcountries.Country, error) {
	snap := s.store.Snapshot()
	if err := phaseError(snap); err != nil {
		return restcountries.Country{}, nil, err
	}
	selected, ok := state.FindByName(snap.All, name)
	if !ok {
		return restcountries.Country{}, nil, fiber.NewError(fiber.StatusNotFound, "country not found")
	}
	return selected, state.RegionPeers(snap.All, selected, state.ChartLimit), nil
}

// phaseError maps a store that has no data yet onto an HTTP error.
func phaseError(snap state.Snapshot) error {
	switch {
	case snap.Loading():
		return fiber.NewError(fiber.StatusServiceUnavailable, present.LoadingMessage)
	case snap.Failed():
		return fiber.NewError(fiber.StatusBadGateway, present.ErrorMessage)
	}
	return nil
}
