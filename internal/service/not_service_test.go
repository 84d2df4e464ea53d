package service_test

import (
	"context"
	"testing"

	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/dto"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotEkleVeListele(t *testing.T) {
	seferRepo := newStubSeferRepo()
	svc := service.NewNotService(newStubNotRepo(), seferRepo)
	ctx := context.Background()

	seferID := ornekSefer(t, seferRepo, "Bandirma")
	digerSefer := ornekSefer(t, seferRepo, "Edremit")

	_, err := svc.Ekle(ctx, seferID, dto.EkleNotRequest{Kategori: "ariza", Metin: "klima ust bolumde zayif"})
	require.NoError(t, err)
	_, err = svc.Ekle(ctx, seferID, dto.EkleNotRequest{Metin: "mola 20 dk uzadi"})
	require.NoError(t, err)
	_, err = svc.Ekle(ctx, digerSefer, dto.EkleNotRequest{Metin: "baska seferin notu"})
	require.NoError(t, err)

	notlar, err := svc.SeferNotlari(ctx, seferID)
	require.NoError(t, err)
	require.Len(t, notlar, 2)
	assert.Equal(t, "ariza", notlar[0].Kategori)
}

func TestNotEkle_BosMetinVeBilinmeyenSefer(t *testing.T) {
	seferRepo := newStubSeferRepo()
	svc := service.NewNotService(newStubNotRepo(), seferRepo)
	ctx := context.Background()

	seferID := ornekSefer(t, seferRepo, "Bandirma")

	_, err := svc.Ekle(ctx, seferID, dto.EkleNotRequest{Metin: "   "})
	var ve *service.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "metin", ve.Alan)

	_, err = svc.Ekle(ctx, 999, dto.EkleNotRequest{Metin: "gecerli not"})
	var nfe *service.NotFoundError
	require.ErrorAs(t, err, &nfe)

	_, err = svc.SeferNotlari(ctx, 999)
	require.ErrorAs(t, err, &nfe)
}
