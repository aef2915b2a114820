package httpapi

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/amidi-app/meteodial/internal/dial"
	"github.com/amidi-app/meteodial/internal/metrics"
	"github.com/amidi-app/meteodial/internal/weather"
)

var validate = validator.New()

// Geocoder resolves free-text queries to locations.
type Geocoder interface {
	Search(ctx context.Context, query string) ([]weather.Location, error)
}

// PrefStore persists the user's selected location.
type PrefStore interface {
	SaveSelected(loc weather.Location) error
	LoadSelected() (weather.Location, bool, error)
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service, geocoder Geocoder, prefs PrefStore) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather/current", func(c *fiber.Ctx) error {
		coords, err := parseCoordQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		snapshot, err := service.Fetch(c.Context(), coords.toLocation())
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "failed to fetch weather data")
		}

		return c.JSON(snapshot)
	})

	v1.Get("/weather/dial", func(c *fiber.Ctx) error {
		var req dialQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		snapshot, err := service.Fetch(c.Context(), req.Coords.toLocation())
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "failed to fetch weather data")
		}

		layout := dial.Compute(snapshot, time.Now(), req.Radius, dial.Point{X: req.CX, Y: req.CY})
		return c.JSON(layout)
	})

	v1.Get("/locations/search", func(c *fiber.Ctx) error {
		query := c.Query("q")
		if query == "" {
			return fiber.NewError(fiber.StatusBadRequest, "q query parameter is required")
		}

		results, err := geocoder.Search(c.Context(), query)
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "failed to search locations")
		}

		return c.JSON(fiber.Map{"results": results})
	})

	v1.Get("/locations/presets", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"results": weather.Presets()})
	})

	v1.Get("/locations/selected", func(c *fiber.Ctx) error {
		loc, ok, err := prefs.LoadSelected()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to load selected location")
		}
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "no location selected")
		}
		return c.JSON(loc)
	})

	v1.Put("/locations/selected", func(c *fiber.Ctx) error {
		var body selectedLocationBody
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		loc := body.toLocation()
		if err := prefs.SaveSelected(loc); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to save selected location")
		}
		return c.JSON(loc)
	})
}

// MetricsMiddleware records per-route request durations.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
		}
		metrics.RequestDuration.
			WithLabelValues(c.Route().Path, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
		return err
	}
}

// coordQuery holds the lat/lon pair identifying a location.
type coordQuery struct {
	Lat float64 `validate:"gte=-90,lte=90"`
	Lon float64 `validate:"gte=-180,lte=180"`
}

func (q coordQuery) toLocation() weather.Location {
	return weather.NewLocation("", q.Lat, q.Lon)
}

func parseCoordQuery(c *fiber.Ctx) (coordQuery, error) {
	var q coordQuery

	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	if latStr == "" || lonStr == "" {
		return q, errors.New("lat and lon query parameters are required")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return q, errors.New("lat must be a number")
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return q, errors.New("lon must be a number")
	}

	q.Lat = lat
	q.Lon = lon
	if err := validate.Struct(q); err != nil {
		return q, err
	}
	return q, nil
}

// dialQuery holds parameters for the radial layout endpoint.
type dialQuery struct {
	Coords coordQuery
	Radius float64 `validate:"gt=0"`
	CX     float64
	CY     float64
}

func (d *dialQuery) bind(c *fiber.Ctx) error {
	coords, err := parseCoordQuery(c)
	if err != nil {
		return err
	}
	d.Coords = coords

	d.Radius = c.QueryFloat("radius", 160)
	// Center defaults to (radius, radius) so the face fills its own square.
	d.CX = c.QueryFloat("cx", d.Radius)
	d.CY = c.QueryFloat("cy", d.Radius)

	return validate.Struct(d)
}

// selectedLocationBody is the PUT payload for the selected location.
type selectedLocationBody struct {
	ID        string  `json:"id"`
	Name      string  `json:"name" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

func (b selectedLocationBody) toLocation() weather.Location {
	if id, err := uuid.Parse(b.ID); err == nil {
		return weather.Location{
			ID:        id,
			Name:      b.Name,
			Latitude:  b.Latitude,
			Longitude: b.Longitude,
		}
	}
	return weather.NewLocation(b.Name, b.Latitude, b.Longitude)
}
