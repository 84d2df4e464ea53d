package infra_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/infra"

	"github.com/stretchr/testify/assert"
)

func TestMirrorBreaker_EsikteBenchCooldownSonrasiTekDeneme(t *testing.T) {
	b := infra.NewMirrorBreaker(infra.MirrorBreakerConfig{
		FailureThreshold: 2,
		Cooldown:         50 * time.Millisecond,
	})
	const ayna = "https://a.example/api"

	assert.True(t, b.Allow(ayna))
	b.Failure(ayna)
	assert.True(t, b.Allow(ayna), "one failure does not bench")
	b.Failure(ayna)
	assert.False(t, b.Allow(ayna))
	assert.True(t, b.Benched(ayna))

	time.Sleep(60 * time.Millisecond)
	assert.True(t, b.Allow(ayna), "cooldown over: one trial allowed")
	b.Failure(ayna)
	assert.False(t, b.Allow(ayna), "failed trial benches again immediately")

	time.Sleep(60 * time.Millisecond)
	assert.True(t, b.Allow(ayna))
	b.Success(ayna)
	b.Failure(ayna)
	assert.True(t, b.Allow(ayna), "success cleared the streak")
}

func TestMirrorBreaker_AynalarBagimsizIzlenir(t *testing.T) {
	b := infra.NewMirrorBreaker(infra.MirrorBreakerConfig{
		FailureThreshold: 1,
		Cooldown:         time.Minute,
	})

	b.Failure("https://a.example/api")
	assert.False(t, b.Allow("https://a.example/api"))
	assert.True(t, b.Allow("https://b.example/api"), "one flaky mirror does not bench the rest")
}

func overpassSunucu(status int, govde string, sayac *atomic.Int32) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if sayac != nil {
			sayac.Add(1)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(govde))
	}))
}

func TestHizLimiti_BozukAynadanSaglaminaGecer(t *testing.T) {
	bozuk := overpassSunucu(http.StatusInternalServerError, "", nil)
	defer bozuk.Close()
	saglam := overpassSunucu(http.StatusOK,
		`{"elements":[{"tags":{"highway":"trunk","maxspeed":"82"}}]}`, nil)
	defer saglam.Close()

	c := infra.NewOverpassClient(
		[]string{bozuk.URL, saglam.URL},
		infra.NewMirrorBreaker(infra.DefaultMirrorBreakerConfig()),
	)

	sonuc := c.HizLimiti(context.Background(), 40.35, 27.97)
	assert.Equal(t, 82, sonuc.Limit)
	assert.Equal(t, "trunk", sonuc.Highway)
	assert.Equal(t, "osm:maxspeed", sonuc.Kaynak)
}

func TestHizLimiti_BenchliAynayaIstekGitmez(t *testing.T) {
	var istekler atomic.Int32
	limitli := overpassSunucu(http.StatusTooManyRequests, "", &istekler)
	defer limitli.Close()
	saglam := overpassSunucu(http.StatusOK,
		`{"elements":[{"tags":{"highway":"primary","maxspeed":"90"}}]}`, nil)
	defer saglam.Close()

	c := infra.NewOverpassClient(
		[]string{limitli.URL, saglam.URL},
		infra.NewMirrorBreaker(infra.MirrorBreakerConfig{FailureThreshold: 1, Cooldown: time.Minute}),
	)

	// first call benches the rate-limited mirror, second skips it outright
	_ = c.HizLimiti(context.Background(), 40.35, 27.97)
	sonuc := c.HizLimiti(context.Background(), 40.35, 27.97)

	assert.EqualValues(t, 1, istekler.Load())
	assert.Equal(t, 90, sonuc.Limit)
	assert.Equal(t, "osm:maxspeed", sonuc.Kaynak)
}

func TestHizLimiti_TumAynalarBenchliykenFallback(t *testing.T) {
	var istekler atomic.Int32
	bozuk := overpassSunucu(http.StatusInternalServerError, "", &istekler)
	defer bozuk.Close()

	c := infra.NewOverpassClient(
		[]string{bozuk.URL},
		infra.NewMirrorBreaker(infra.MirrorBreakerConfig{FailureThreshold: 1, Cooldown: time.Minute}),
	)

	ilk := c.HizLimiti(context.Background(), 40.35, 27.97)
	ikinci := c.HizLimiti(context.Background(), 40.35, 27.97)

	assert.Equal(t, "fallback", ilk.Kaynak)
	assert.Equal(t, "fallback", ikinci.Kaynak)
	assert.Equal(t, 90, ikinci.Limit)
	assert.EqualValues(t, 1, istekler.Load(), "benched mirror gets no network traffic")
}
