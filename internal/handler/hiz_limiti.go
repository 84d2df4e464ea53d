package handler

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/apierror"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/infra"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	hizCacheTTL = 10 * time.Minute
	// ~100 m buckets: nearby requests from a moving bus share one lookup.
	hizBucketDeg = 0.001
)

// HizLimitiHandler proxies OSM speed-limit lookups for the driver display.
// Results are cached in redis per coordinate bucket so a bus crawling along
// the same road does not hammer the Overpass mirrors.
type HizLimitiHandler struct {
	overpass *infra.OverpassClient
	rdb      *redis.Client
}

func NewHizLimitiHandler(overpass *infra.OverpassClient, rdb *redis.Client) *HizLimitiHandler {
	return &HizLimitiHandler{overpass: overpass, rdb: rdb}
}

// HizLimiti godoc
// @Summary Konum icin hiz limiti
// @Tags hiz-limiti
// @Produce json
// @Param lat query number true "Enlem"
// @Param lng query number true "Boylam"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} apierror.APIError
// @Router /v1/hiz-limiti [get]
func (h *HizLimitiHandler) HizLimiti(c *gin.Context) {
	lat, err1 := strconv.ParseFloat(c.Query("lat"), 64)
	lng, err2 := strconv.ParseFloat(c.Query("lng"), 64)
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, apierror.New("lat ve lng gerekli"))
		return
	}

	ctx := c.Request.Context()
	key := hizCacheAnahtari(lat, lng)

	if h.rdb != nil {
		if raw, err := h.rdb.Get(ctx, key).Result(); err == nil {
			var sonuc infra.HizLimitiSonuc
			if json.Unmarshal([]byte(raw), &sonuc) == nil {
				ttl, _ := h.rdb.TTL(ctx, key).Result()
				c.JSON(http.StatusOK, gin.H{
					"ok":         true,
					"limit":      sonuc.Limit,
					"highway":    sonuc.Highway,
					"source":     sonuc.Kaynak,
					"from_cache": true,
					"ttl":        int(ttl.Seconds()),
				})
				return
			}
		}
	}

	sonuc := h.overpass.HizLimiti(ctx, lat, lng)

	if h.rdb != nil {
		if raw, err := json.Marshal(sonuc); err == nil {
			_ = h.rdb.Set(ctx, key, raw, hizCacheTTL).Err()
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":         true,
		"limit":      sonuc.Limit,
		"highway":    sonuc.Highway,
		"source":     sonuc.Kaynak,
		"from_cache": false,
		"ttl":        int(hizCacheTTL.Seconds()),
	})
}

func hizCacheAnahtari(lat, lng float64) string {
	bl := math.Round(lat/hizBucketDeg) * hizBucketDeg
	bg := math.Round(lng/hizBucketDeg) * hizBucketDeg
	return fmt.Sprintf("hiz:%.3f:%.3f", bl, bg)
}
