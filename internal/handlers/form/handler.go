package form

import (
	"bytes"
	"deliveryform/infras/otel"
	"deliveryform/internal/domains/delivery/service"
	"deliveryform/shared/constant"
	"embed"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	formTemplate    = "templates/form.html"
	pageTitle       = "Schedule Your Delivery"
	availabilityURL = "/api/availability"
	submitURL       = "/api/submit"
)

//go:embed templates/*.html
var templates embed.FS

// Page is the data rendered into the booking form.
type Page struct {
	Title            string
	MinDate          string
	MaxDate          string
	CutoffHour       int
	UnavailableDates []string
	SelectableDates  []string
	AvailabilityURL  string
	SubmitURL        string
}

type Handler struct {
	service  service.Delivery
	otel     otel.Otel
	template *template.Template
}

func New(service service.Delivery, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		otel:     otel,
		template: template.Must(template.ParseFS(templates, formTemplate)),
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.Index)
}

// Index renders the booking form with the date picker limited to the current window.
// The picker accepts only the dates the server reports as selectable. When
// availability cannot be read every window date is offered and the submit
// check decides.
func (handler *Handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Index")
	defer scope.End()

	page := Page{
		Title:            pageTitle,
		UnavailableDates: []string{},
		SelectableDates:  []string{},
		AvailabilityURL:  availabilityURL,
		SubmitURL:        submitURL,
	}

	calendar := handler.service.Calendar()
	page.CutoffHour = calendar.CutoffHour

	availability, err := handler.service.Availability(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get availability for the form")

		window := handler.service.Window()
		page.MinDate = calendar.FormatDate(window.Start)
		page.MaxDate = calendar.FormatDate(window.End)

		for _, day := range window.Days() {
			page.SelectableDates = append(page.SelectableDates, calendar.FormatDate(day))
		}
	} else {
		page.MinDate = availability.WindowStart
		page.MaxDate = availability.WindowEnd
		page.UnavailableDates = availability.UnavailableDates
		page.SelectableDates = availability.SelectableDates
	}

	var body bytes.Buffer
	if err := handler.template.Execute(&body, page); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to render form")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeHTML)
	w.WriteHeader(http.StatusOK)

	if _, err := body.WriteTo(w); err != nil {
		log.Warn().Err(err).Msg("failed to write form")
	}
}
