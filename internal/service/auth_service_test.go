package service_test

import (
	"context"
	"testing"

	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/config"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/dto"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func yeniAuthOrtami(t *testing.T) (service.AuthService, *stubPersonelRepo) {
	t.Helper()
	repo := newStubPersonelRepo()
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
	}
	return service.NewAuthService(repo, cfg), repo
}

func ornekHostes(t *testing.T, svc service.AuthService) *dto.PersonelResponse {
	t.Helper()
	p, err := svc.PersonelOlustur(context.Background(), dto.OlusturPersonelRequest{
		KullaniciAdi: "ayse", AdSoyad: "Ayse Yilmaz", Sifre: "gizli1234", Rol: "hostes",
	})
	require.NoError(t, err)
	return p
}

func TestLogin_BasariliGiris(t *testing.T) {
	svc, _ := yeniAuthOrtami(t)
	ornekHostes(t, svc)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		KullaniciAdi: "ayse", Sifre: "gizli1234",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 8*3600, resp.ExpiresIn)
	assert.Equal(t, "ayse", resp.Personel.KullaniciAdi)
	assert.Equal(t, "hostes", resp.Personel.Rol)

	// claims carry identity and role for the middleware
	token, err := jwt.Parse(resp.AccessToken, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "ayse", claims["kullanici_adi"])
	assert.Equal(t, "hostes", claims["rol"])
}

func TestLogin_YanlisSifreVeBilinmeyenKullanici(t *testing.T) {
	svc, _ := yeniAuthOrtami(t)
	ornekHostes(t, svc)
	ctx := context.Background()

	_, err := svc.Login(ctx, dto.LoginRequest{KullaniciAdi: "ayse", Sifre: "yanlis"})
	require.Error(t, err)

	_, err = svc.Login(ctx, dto.LoginRequest{KullaniciAdi: "mehmet", Sifre: "gizli1234"})
	require.Error(t, err)
}

func TestLogin_PasifPersonelGiremez(t *testing.T) {
	svc, _ := yeniAuthOrtami(t)
	p := ornekHostes(t, svc)
	ctx := context.Background()

	require.NoError(t, svc.PersonelDeaktive(ctx, p.ID))

	_, err := svc.Login(ctx, dto.LoginRequest{KullaniciAdi: "ayse", Sifre: "gizli1234"})
	require.Error(t, err)

	// reactivation restores access
	require.NoError(t, svc.PersonelReaktive(ctx, p.ID))
	_, err = svc.Login(ctx, dto.LoginRequest{KullaniciAdi: "ayse", Sifre: "gizli1234"})
	require.NoError(t, err)
}

func TestRefresh_YeniTokenCiftiVerir(t *testing.T) {
	svc, _ := yeniAuthOrtami(t)
	ornekHostes(t, svc)
	ctx := context.Background()

	giris, err := svc.Login(ctx, dto.LoginRequest{KullaniciAdi: "ayse", Sifre: "gizli1234"})
	require.NoError(t, err)

	yenilenen, err := svc.Refresh(ctx, giris.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, yenilenen.AccessToken)
	assert.Equal(t, "ayse", yenilenen.Personel.KullaniciAdi)
}

func TestRefresh_GecersizTokenReddedilir(t *testing.T) {
	svc, _ := yeniAuthOrtami(t)

	_, err := svc.Refresh(context.Background(), "not-a-jwt")
	require.Error(t, err)
}

func TestRefresh_PasifPersonelinTokeniKullanilamaz(t *testing.T) {
	svc, _ := yeniAuthOrtami(t)
	p := ornekHostes(t, svc)
	ctx := context.Background()

	giris, err := svc.Login(ctx, dto.LoginRequest{KullaniciAdi: "ayse", Sifre: "gizli1234"})
	require.NoError(t, err)

	require.NoError(t, svc.PersonelDeaktive(ctx, p.ID))

	_, err = svc.Refresh(ctx, giris.RefreshToken)
	require.Error(t, err)
}

func TestPersonelOlustur_AyniKullaniciAdiReddedilir(t *testing.T) {
	svc, _ := yeniAuthOrtami(t)
	ornekHostes(t, svc)

	_, err := svc.PersonelOlustur(context.Background(), dto.OlusturPersonelRequest{
		KullaniciAdi: "ayse", AdSoyad: "Baska Ayse", Sifre: "farkli123", Rol: "kaptan",
	})

	var ve *service.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "kullanici_adi", ve.Alan)
}

func TestPersonelGuncelle_SifreDegisirEskisiCalismaz(t *testing.T) {
	svc, _ := yeniAuthOrtami(t)
	p := ornekHostes(t, svc)
	ctx := context.Background()

	_, err := svc.PersonelGuncelle(ctx, p.ID, dto.GuncellePersonelRequest{Sifre: "yeni-sifre"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, dto.LoginRequest{KullaniciAdi: "ayse", Sifre: "gizli1234"})
	require.Error(t, err)

	_, err = svc.Login(ctx, dto.LoginRequest{KullaniciAdi: "ayse", Sifre: "yeni-sifre"})
	require.NoError(t, err)
}

func TestPersonelListele_PasiflerSadeceHepsiIleGelir(t *testing.T) {
	svc, _ := yeniAuthOrtami(t)
	p := ornekHostes(t, svc)
	ctx := context.Background()

	_, err := svc.PersonelOlustur(ctx, dto.OlusturPersonelRequest{
		KullaniciAdi: "mehmet", AdSoyad: "Mehmet Kaya", Sifre: "gizli1234", Rol: "kaptan",
	})
	require.NoError(t, err)
	require.NoError(t, svc.PersonelDeaktive(ctx, p.ID))

	aktifler, err := svc.PersonelListele(ctx, false)
	require.NoError(t, err)
	require.Len(t, aktifler, 1)
	assert.Equal(t, "mehmet", aktifler[0].KullaniciAdi)

	hepsi, err := svc.PersonelListele(ctx, true)
	require.NoError(t, err)
	assert.Len(t, hepsi, 2)
}
