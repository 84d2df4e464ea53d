package service_test

import (
	"context"
	"testing"

	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/dto"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/model"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func yeniKasaOrtami(t *testing.T) (service.KasaService, *stubSeferRepo, *stubKasaRepo) {
	t.Helper()
	seferRepo := newStubSeferRepo()
	kasaRepo := newStubKasaRepo()
	return service.NewKasaService(kasaRepo, seferRepo), seferRepo, kasaRepo
}

func TestKasaKaydet_TutarSunucudaHesaplanir(t *testing.T) {
	svc, seferRepo, _ := yeniKasaOrtami(t)
	seferID := ornekSefer(t, seferRepo, "Bandirma")

	resp, err := svc.Kaydet(context.Background(), dto.KaydetKasaRequest{
		SeferID:    &seferID,
		Tur:        model.KasaGelir,
		Kategori:   "bilet",
		Miktar:     decimal.NewFromInt(3),
		BirimFiyat: decimal.RequireFromString("249.90"),
		OdemeTuru:  model.OdemeNakit,
	})

	require.NoError(t, err)
	assert.True(t, resp.Tutar.Equal(decimal.RequireFromString("749.70")),
		"tutar %s", resp.Tutar)
}

func TestKasaKaydet_SifirMiktarUcretsizKayitOlarakGecer(t *testing.T) {
	svc, seferRepo, kasaRepo := yeniKasaOrtami(t)
	seferID := ornekSefer(t, seferRepo, "Bandirma")

	// complimentary serving: recorded for the trail, books nothing
	resp, err := svc.Kaydet(context.Background(), dto.KaydetKasaRequest{
		SeferID:    &seferID,
		Tur:        model.KasaGelir,
		Kategori:   "bufe",
		Aciklama:   "ikram cay",
		Miktar:     decimal.Zero,
		BirimFiyat: decimal.NewFromInt(10),
		OdemeTuru:  model.OdemeUcretsiz,
	})

	require.NoError(t, err)
	assert.True(t, resp.Tutar.IsZero(), "tutar %s", resp.Tutar)
	assert.Len(t, kasaRepo.rows, 1)
}

func TestKasaKaydet_GecersizGirdilerReddedilir(t *testing.T) {
	svc, seferRepo, kasaRepo := yeniKasaOrtami(t)
	seferID := ornekSefer(t, seferRepo, "Bandirma")

	vakalar := []struct {
		ad   string
		req  dto.KaydetKasaRequest
		alan string
	}{
		{
			ad:   "bilinmeyen tur",
			req:  dto.KaydetKasaRequest{SeferID: &seferID, Tur: "transfer", Kategori: "bilet", Miktar: decimal.NewFromInt(1), BirimFiyat: decimal.NewFromInt(10)},
			alan: "tur",
		},
		{
			ad:   "negatif miktar",
			req:  dto.KaydetKasaRequest{SeferID: &seferID, Tur: model.KasaGider, Kategori: "yakit", Miktar: decimal.NewFromInt(-2), BirimFiyat: decimal.NewFromInt(10)},
			alan: "miktar",
		},
		{
			ad:   "negatif birim fiyat",
			req:  dto.KaydetKasaRequest{SeferID: &seferID, Tur: model.KasaGelir, Kategori: "bilet", Miktar: decimal.NewFromInt(1), BirimFiyat: decimal.NewFromInt(-5)},
			alan: "birim_fiyat",
		},
		{
			ad:   "gecersiz odeme turu",
			req:  dto.KaydetKasaRequest{SeferID: &seferID, Tur: model.KasaGelir, Kategori: "bilet", Miktar: decimal.NewFromInt(1), BirimFiyat: decimal.NewFromInt(10), OdemeTuru: "cek"},
			alan: "odeme_turu",
		},
	}

	for _, vaka := range vakalar {
		t.Run(vaka.ad, func(t *testing.T) {
			_, err := svc.Kaydet(context.Background(), vaka.req)
			var ve *service.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, vaka.alan, ve.Alan)
		})
	}

	// Rejections never reach the ledger.
	assert.Empty(t, kasaRepo.rows)
}

func TestKasaKaydet_BilinmeyenSefer404(t *testing.T) {
	svc, _, _ := yeniKasaOrtami(t)
	yok := uint(77)

	_, err := svc.Kaydet(context.Background(), dto.KaydetKasaRequest{
		SeferID: &yok, Tur: model.KasaGider, Kategori: "yakit",
		Miktar: decimal.NewFromInt(1), BirimFiyat: decimal.NewFromInt(500),
	})

	var nfe *service.NotFoundError
	require.ErrorAs(t, err, &nfe)
}

func TestKasaKaydet_SefersizDepoKaydiKabulEdilir(t *testing.T) {
	svc, _, _ := yeniKasaOrtami(t)

	resp, err := svc.Kaydet(context.Background(), dto.KaydetKasaRequest{
		Tur: model.KasaGider, Kategori: "yakit", Aciklama: "garaj dolumu",
		Miktar: decimal.NewFromInt(40), BirimFiyat: decimal.RequireFromString("42.50"),
	})

	require.NoError(t, err)
	assert.Nil(t, resp.SeferID)
	assert.True(t, resp.Tutar.Equal(decimal.NewFromInt(1700)))
}

func TestKasaSeferOzeti_ToplamlarOkumadaYenidenHesaplanir(t *testing.T) {
	svc, seferRepo, _ := yeniKasaOrtami(t)
	seferID := ornekSefer(t, seferRepo, "Bandirma")
	ctx := context.Background()

	kaydet := func(tur, kategori string, miktar, fiyat string) {
		t.Helper()
		_, err := svc.Kaydet(ctx, dto.KaydetKasaRequest{
			SeferID: &seferID, Tur: tur, Kategori: kategori,
			Miktar:     decimal.RequireFromString(miktar),
			BirimFiyat: decimal.RequireFromString(fiyat),
		})
		require.NoError(t, err)
	}

	kaydet(model.KasaGelir, "bilet", "4", "250")  // 1000
	kaydet(model.KasaGelir, "bufe", "2", "35.50") // 71
	kaydet(model.KasaGider, "yakit", "1", "600")  // 600
	// correction: the fuel entry was 100 too high → inverse gelir entry
	kaydet(model.KasaGelir, "duzeltme", "1", "100")

	ozet, err := svc.SeferOzeti(ctx, seferID)
	require.NoError(t, err)
	assert.True(t, ozet.Gelir.Equal(decimal.RequireFromString("1171")), "gelir %s", ozet.Gelir)
	assert.True(t, ozet.Gider.Equal(decimal.NewFromInt(600)), "gider %s", ozet.Gider)
	assert.True(t, ozet.Net.Equal(decimal.RequireFromString("571")), "net %s", ozet.Net)
}

func TestKasaListele_FiltrelerUygulanir(t *testing.T) {
	svc, seferRepo, _ := yeniKasaOrtami(t)
	sefer1 := ornekSefer(t, seferRepo, "Bandirma")
	sefer2 := ornekSefer(t, seferRepo, "Edremit")
	ctx := context.Background()

	for _, v := range []struct {
		seferID *uint
		tur     string
		kat     string
	}{
		{&sefer1, model.KasaGelir, "bilet"},
		{&sefer1, model.KasaGider, "yakit"},
		{&sefer2, model.KasaGelir, "bilet"},
		{nil, model.KasaGider, "bakim"},
	} {
		_, err := svc.Kaydet(ctx, dto.KaydetKasaRequest{
			SeferID: v.seferID, Tur: v.tur, Kategori: v.kat,
			Miktar: decimal.NewFromInt(1), BirimFiyat: decimal.NewFromInt(100),
		})
		require.NoError(t, err)
	}

	resp, err := svc.Listele(ctx, dto.KasaFilter{SeferID: &sefer1})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 2)
	assert.EqualValues(t, 2, resp.Total)

	resp, err = svc.Listele(ctx, dto.KasaFilter{Tur: model.KasaGider})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 2)

	resp, err = svc.Listele(ctx, dto.KasaFilter{SeferID: &sefer1, Tur: model.KasaGider, Kategori: "yakit"})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "yakit", resp.Data[0].Kategori)
}
