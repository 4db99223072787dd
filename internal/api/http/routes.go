package httpapi

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-compare/internal/store"
	"github.com/i474232898/weather-compare/internal/weather"
)

var validate = validator.New()

// CircuitReporter is implemented by providers that expose their breaker state.
type CircuitReporter interface {
	CircuitState() string
}

// Options tune the non-page endpoints.
type Options struct {
	// ProbeCity is reported by /health when the availability probe is enabled.
	ProbeCity string
	// Circuit is optional.
	Circuit CircuitReporter
}

// RegisterRoutes wires the page and API handlers into the Fiber app. Page
// routes expect the app to be configured with the views engine.
func RegisterRoutes(app *fiber.App, service *weather.Service, opts Options) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Render("home", service.Home(), "layout")
	})

	results := func(c *fiber.Ctx) error {
		view, err := service.Lookup(c.UserContext(), c.Query("city"), c.Query("units"))
		if err != nil {
			return err
		}
		return c.Render("results", view, "layout")
	}
	app.Get("/results", results)
	app.Post("/results", results)

	comparison := func(c *fiber.Ctx) error {
		view, err := service.Compare(c.UserContext(), c.Query("city1"), c.Query("city2"), c.Query("units"))
		if err != nil {
			return err
		}
		return c.Render("comparison_results", view, "layout")
	}
	app.Get("/comparison_results", comparison)
	app.Post("/comparison_results", comparison)

	app.Get("/health", func(c *fiber.Ctx) error {
		body := fiber.Map{
			"status":  "ok",
			"service": "weather-compare",
		}
		if opts.Circuit != nil {
			body["circuit"] = opts.Circuit.CircuitState()
		}
		if opts.ProbeCity != "" {
			if latest, err := service.LatestProbe(opts.ProbeCity); err == nil {
				body["probe"] = latest
			}
		}
		return c.JSON(body)
	})

	v1 := app.Group("/api/v1")

	v1.Get("/home", func(c *fiber.Ctx) error {
		return c.JSON(service.Home())
	})

	v1.Get("/weather/current", func(c *fiber.Ctx) error {
		view, err := service.Lookup(c.UserContext(), c.Query("city"), c.Query("units"))
		if err != nil {
			return err
		}
		return c.JSON(view)
	})

	v1.Get("/weather/compare", func(c *fiber.Ctx) error {
		view, err := service.Compare(c.UserContext(), c.Query("city1"), c.Query("city2"), c.Query("units"))
		if err != nil {
			return err
		}
		return c.JSON(view)
	})

	v1.Get("/probes", func(c *fiber.Ctx) error {
		var req probeQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		probes, err := service.ProbeRange(req.City, req.From, req.To)
		if err != nil {
			return err
		}

		return c.JSON(fiber.Map{
			"city":   req.City,
			"from":   req.From,
			"to":     req.To,
			"probes": probes,
		})
	})
}

// ErrorHandler renders every error as JSON, mapping upstream failures to 502.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		code = fe.Code
	case errors.Is(err, weather.ErrUpstreamUnavailable):
		code = fiber.StatusBadGateway
		message = weather.ErrUpstreamUnavailable.Error()
	case errors.Is(err, store.ErrNotFound):
		code = fiber.StatusNotFound
	case errors.Is(err, weather.ErrProbesDisabled):
		code = fiber.StatusNotFound
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}

// probeQuery holds query parameters for the probe history endpoint.
type probeQuery struct {
	City string    `validate:"required"`
	From time.Time `validate:"required"`
	To   time.Time `validate:"required,gtefield=From"`
}

func (q *probeQuery) bind(c *fiber.Ctx) error {
	q.City = c.Query("city")

	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		return errors.New("from and to query parameters are required")
	}

	from, err := parseTime(fromStr)
	if err != nil {
		return err
	}
	to, err := parseTime(toStr)
	if err != nil {
		return err
	}

	q.From = from
	q.To = to
	return nil
}

// parseTime tries to parse either RFC3339 or Unix seconds.
func parseTime(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	if unix, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(unix, 0).UTC(), nil
	}
	return time.Time{}, errors.New("invalid time format; use RFC3339 or unix seconds")
}
