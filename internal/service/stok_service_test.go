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

func yeniStokOrtami(t *testing.T) (service.StokService, *stubUrunRepo, *stubStokRepo, *stubSeferRepo) {
	t.Helper()
	stokRepo := newStubStokRepo()
	urunRepo := newStubUrunRepo()
	seferRepo := newStubSeferRepo()
	// rdb and dispatcher nil: no cache, no alerts
	svc := service.NewStokService(stokRepo, urunRepo, seferRepo, nil, nil, "")
	return svc, urunRepo, stokRepo, seferRepo
}

func ornekUrun(t *testing.T, repo *stubUrunRepo, ad string, kritik int64) *model.Urun {
	t.Helper()
	u := &model.Urun{
		Ad:          ad,
		Birim:       "adet",
		AlisFiyati:  decimal.NewFromInt(10),
		SatisFiyati: decimal.NewFromInt(25),
		KritikStok:  decimal.NewFromInt(kritik),
		Aktif:       true,
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func stokGiris(t *testing.T, svc service.StokService, urunID uint, miktar int64) {
	t.Helper()
	_, err := svc.Hareket(context.Background(), dto.StokHareketRequest{
		UrunID: urunID, Tur: model.StokGiris, Miktar: decimal.NewFromInt(miktar),
	})
	require.NoError(t, err)
}

func TestStokHareket_MevcutStokHareketlerinToplamidir(t *testing.T) {
	svc, urunRepo, _, _ := yeniStokOrtami(t)
	urun := ornekUrun(t, urunRepo, "Su 0.5L", 10)
	ctx := context.Background()

	stokGiris(t, svc, urun.ID, 50)
	_, err := svc.Hareket(ctx, dto.StokHareketRequest{
		UrunID: urun.ID, Tur: model.StokSatis, Miktar: decimal.NewFromInt(8),
	})
	require.NoError(t, err)
	_, err = svc.Hareket(ctx, dto.StokHareketRequest{
		UrunID: urun.ID, Tur: model.StokDuzeltme, Miktar: decimal.NewFromInt(-2),
		Aciklama: "sayim farki",
	})
	require.NoError(t, err)

	mevcut, err := svc.MevcutStok(ctx, urun.ID)
	require.NoError(t, err)
	assert.True(t, mevcut.Equal(decimal.NewFromInt(40)), "mevcut %s", mevcut)
}

func TestStokHareket_SatisMiktariNegatifSaklanir(t *testing.T) {
	svc, urunRepo, stokRepo, _ := yeniStokOrtami(t)
	urun := ornekUrun(t, urunRepo, "Cay", 5)

	stokGiris(t, svc, urun.ID, 20)
	resp, err := svc.Hareket(context.Background(), dto.StokHareketRequest{
		UrunID: urun.ID, Tur: model.StokSatis, Miktar: decimal.NewFromInt(3),
	})
	require.NoError(t, err)

	assert.True(t, resp.Miktar.Equal(decimal.NewFromInt(-3)))
	require.Len(t, stokRepo.rows, 2)
	assert.True(t, stokRepo.rows[1].Miktar.IsNegative())
}

func TestStokHareket_TabaniDelenSatisReddedilirVeYazilmaz(t *testing.T) {
	svc, urunRepo, stokRepo, _ := yeniStokOrtami(t)
	urun := ornekUrun(t, urunRepo, "Kek", 5)

	stokGiris(t, svc, urun.ID, 4)
	_, err := svc.Hareket(context.Background(), dto.StokHareketRequest{
		UrunID: urun.ID, Tur: model.StokSatis, Miktar: decimal.NewFromInt(5),
	})

	var ise *service.InsufficientStockError
	require.ErrorAs(t, err, &ise)
	assert.Equal(t, urun.ID, ise.UrunID)
	assert.True(t, ise.Eldeki.Equal(decimal.NewFromInt(4)))
	assert.True(t, ise.Istenen.Equal(decimal.NewFromInt(5)))
	assert.Len(t, stokRepo.rows, 1, "rejected move must not be appended")
}

func TestStokHareket_OnayliEksiSadeceDuzeltmedeGecer(t *testing.T) {
	svc, urunRepo, _, _ := yeniStokOrtami(t)
	urun := ornekUrun(t, urunRepo, "Gofret", 5)
	ctx := context.Background()

	stokGiris(t, svc, urun.ID, 2)

	// plain correction below zero → floor applies
	_, err := svc.Hareket(ctx, dto.StokHareketRequest{
		UrunID: urun.ID, Tur: model.StokDuzeltme, Miktar: decimal.NewFromInt(-5),
	})
	var ise *service.InsufficientStockError
	require.ErrorAs(t, err, &ise)

	// satis can never opt out, flag or not
	_, err = svc.Hareket(ctx, dto.StokHareketRequest{
		UrunID: urun.ID, Tur: model.StokSatis, Miktar: decimal.NewFromInt(5), OnayliEksi: true,
	})
	require.ErrorAs(t, err, &ise)

	// approved correction may drive the sum negative
	_, err = svc.Hareket(ctx, dto.StokHareketRequest{
		UrunID: urun.ID, Tur: model.StokDuzeltme, Miktar: decimal.NewFromInt(-5), OnayliEksi: true,
	})
	require.NoError(t, err)

	mevcut, err := svc.MevcutStok(ctx, urun.ID)
	require.NoError(t, err)
	assert.True(t, mevcut.Equal(decimal.NewFromInt(-3)), "mevcut %s", mevcut)
}

func TestStokHareket_GecersizMiktarlar(t *testing.T) {
	svc, urunRepo, _, _ := yeniStokOrtami(t)
	urun := ornekUrun(t, urunRepo, "Su 0.5L", 10)
	ctx := context.Background()

	for _, vaka := range []dto.StokHareketRequest{
		{UrunID: urun.ID, Tur: model.StokGiris, Miktar: decimal.NewFromInt(-1)},
		{UrunID: urun.ID, Tur: model.StokSatis, Miktar: decimal.Zero},
		{UrunID: urun.ID, Tur: model.StokDuzeltme, Miktar: decimal.Zero},
		{UrunID: urun.ID, Tur: "transfer", Miktar: decimal.NewFromInt(1)},
	} {
		_, err := svc.Hareket(ctx, vaka)
		var ve *service.ValidationError
		require.ErrorAs(t, err, &ve, "tur=%s miktar=%s", vaka.Tur, vaka.Miktar)
	}
}

func TestStokHareket_PasifUrunSadeceDuzeltmeKabulEder(t *testing.T) {
	svc, urunRepo, _, _ := yeniStokOrtami(t)
	urun := ornekUrun(t, urunRepo, "Eski Urun", 0)
	ctx := context.Background()

	stokGiris(t, svc, urun.ID, 10)
	require.NoError(t, urunRepo.SoftDelete(ctx, urun.ID))

	_, err := svc.Hareket(ctx, dto.StokHareketRequest{
		UrunID: urun.ID, Tur: model.StokGiris, Miktar: decimal.NewFromInt(5),
	})
	var ve *service.ValidationError
	require.ErrorAs(t, err, &ve)

	_, err = svc.Hareket(ctx, dto.StokHareketRequest{
		UrunID: urun.ID, Tur: model.StokSatis, Miktar: decimal.NewFromInt(1),
	})
	require.ErrorAs(t, err, &ve)

	// retiring leftovers via correction stays possible
	_, err = svc.Hareket(ctx, dto.StokHareketRequest{
		UrunID: urun.ID, Tur: model.StokDuzeltme, Miktar: decimal.NewFromInt(-10),
		Aciklama: "depoya iade",
	})
	require.NoError(t, err)
}

func TestKritikStoklar_EsikDahildir(t *testing.T) {
	svc, urunRepo, _, _ := yeniStokOrtami(t)
	ctx := context.Background()

	esikUstu := ornekUrun(t, urunRepo, "Su 0.5L", 10)
	tamEsikte := ornekUrun(t, urunRepo, "Cay", 10)
	esikAlti := ornekUrun(t, urunRepo, "Kek", 10)
	pasif := ornekUrun(t, urunRepo, "Eski Urun", 10)

	stokGiris(t, svc, esikUstu.ID, 11)
	stokGiris(t, svc, tamEsikte.ID, 10)
	stokGiris(t, svc, esikAlti.ID, 3)
	stokGiris(t, svc, pasif.ID, 1)
	require.NoError(t, urunRepo.SoftDelete(ctx, pasif.ID))

	kritik, err := svc.KritikStoklar(ctx)
	require.NoError(t, err)

	adlar := make([]string, 0, len(kritik))
	for _, k := range kritik {
		adlar = append(adlar, k.Ad)
	}
	assert.ElementsMatch(t, []string{"Cay", "Kek"}, adlar)
}

func TestStokHareketler_FiltrelerUygulanir(t *testing.T) {
	svc, urunRepo, _, seferRepo := yeniStokOrtami(t)
	urun1 := ornekUrun(t, urunRepo, "Su 0.5L", 5)
	urun2 := ornekUrun(t, urunRepo, "Cay", 5)
	seferID := ornekSefer(t, seferRepo, "Bandirma")
	ctx := context.Background()

	stokGiris(t, svc, urun1.ID, 20)
	stokGiris(t, svc, urun2.ID, 20)
	_, err := svc.Hareket(ctx, dto.StokHareketRequest{
		UrunID: urun1.ID, SeferID: &seferID, Tur: model.StokSatis, Miktar: decimal.NewFromInt(2),
	})
	require.NoError(t, err)

	resp, err := svc.Hareketler(ctx, dto.StokFilter{UrunID: &urun1.ID})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 2)

	resp, err = svc.Hareketler(ctx, dto.StokFilter{Tur: model.StokSatis})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, urun1.ID, resp.Data[0].UrunID)

	resp, err = svc.Hareketler(ctx, dto.StokFilter{SeferID: &seferID})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 1)
}
