package infra

// overpass.go — OSM speed-limit lookup through public Overpass mirrors.
// Tries each mirror in order, skipping ones the breaker has benched; a
// mirror answering 429 counts as failed and moves to the next. Callers fall
// back to highway-class defaults when no maxspeed tag is found.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrAllMirrorsBenched means every configured mirror is sitting out a
// cooldown; the lookup degrades to the fallback table without any network
// round trip.
var ErrAllMirrorsBenched = errors.New("overpass: all mirrors benched")

// HizLimitiSonuc is the resolved speed limit for a coordinate.
type HizLimitiSonuc struct {
	Limit   int    `json:"limit"`   // km/h
	Highway string `json:"highway"` // OSM highway class of the nearest way
	Kaynak  string `json:"kaynak"`  // "osm:maxspeed" or "fallback"
}

// OverpassClient queries Overpass mirrors for the nearest tagged way.
type OverpassClient struct {
	mirrors    []string
	httpClient *http.Client
	breaker    *MirrorBreaker
}

func NewOverpassClient(mirrors []string, breaker *MirrorBreaker) *OverpassClient {
	return &OverpassClient{
		mirrors:    mirrors,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		breaker:    breaker,
	}
}

type overpassResponse struct {
	Elements []struct {
		Tags   map[string]string `json:"tags"`
		Center *struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"center"`
	} `json:"elements"`
}

// HizLimiti resolves the speed limit near (lat, lng). Network failure is not
// an error from the caller's point of view: the result degrades to the
// highway-class fallback table.
func (c *OverpassClient) HizLimiti(ctx context.Context, lat, lng float64) *HizLimitiSonuc {
	tags, err := c.query(ctx, lat, lng)
	if err != nil {
		tags = nil
	}

	highway := strings.ToLower(tags["highway"])
	if limit, ok := parseMaxspeed(tags["maxspeed"]); ok {
		return &HizLimitiSonuc{Limit: limit, Highway: highway, Kaynak: "osm:maxspeed"}
	}
	return &HizLimitiSonuc{Limit: fallbackLimit(highway), Highway: highway, Kaynak: "fallback"}
}

// query asks each healthy mirror in turn for ways within 60 m of the point
// and returns the tags of the nearest one. Mirror health feeds the breaker:
// a rate limit or error benches that mirror without touching the others.
func (c *OverpassClient) query(ctx context.Context, lat, lng float64) (map[string]string, error) {
	q := fmt.Sprintf("[out:json][timeout:7];way(around:60,%f,%f)[highway];out tags center 1;", lat, lng)

	denenen := 0
	var lastErr error
	for _, mirror := range c.mirrors {
		if !c.breaker.Allow(mirror) {
			continue
		}
		denenen++

		body := url.Values{"data": {q}}.Encode()
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, mirror, strings.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			c.breaker.Failure(mirror)
			lastErr = err
			continue
		}
		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			c.breaker.Failure(mirror)
			lastErr = fmt.Errorf("overpass: %s rate-limited", mirror)
			continue
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			c.breaker.Failure(mirror)
			lastErr = fmt.Errorf("overpass: %s returned %d", mirror, resp.StatusCode)
			continue
		}

		var parsed overpassResponse
		err = json.NewDecoder(resp.Body).Decode(&parsed)
		resp.Body.Close()
		if err != nil {
			c.breaker.Failure(mirror)
			lastErr = err
			continue
		}
		c.breaker.Success(mirror)
		return nearestTags(parsed, lat, lng), nil
	}
	if denenen == 0 {
		return nil, ErrAllMirrorsBenched
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, nil
}

func nearestTags(resp overpassResponse, lat, lng float64) map[string]string {
	best := map[string]string{}
	bestDist := -1.0
	for _, el := range resp.Elements {
		d := 999.0
		if el.Center != nil {
			dy, dx := el.Center.Lat-lat, el.Center.Lon-lng
			d = dy*dy + dx*dx
		}
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = el.Tags
		}
	}
	return best
}

// parseMaxspeed extracts a numeric km/h value from an OSM maxspeed tag.
// Values like "signals", "variable" or "none" carry no number and are
// rejected.
func parseMaxspeed(val string) (int, bool) {
	s := strings.ToLower(strings.TrimSpace(val))
	s = strings.ReplaceAll(s, "km/h", "")
	s = strings.ReplaceAll(s, "kph", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return int(f + 0.5), true
}

// fallbackLimit maps an OSM highway class to the customary Turkish limit.
func fallbackLimit(highway string) int {
	switch highway {
	case "motorway", "trunk":
		return 120
	case "primary", "secondary", "tertiary":
		return 90
	case "residential", "living_street", "service":
		return 50
	default:
		return 90
	}
}
