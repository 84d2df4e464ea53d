package service

import (
	"context"
	"errors"
	"time"

	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/config"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/dto"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/model"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
	PersonelOlustur(ctx context.Context, req dto.OlusturPersonelRequest) (*dto.PersonelResponse, error)
	PersonelListele(ctx context.Context, hepsi bool) ([]dto.PersonelResponse, error)
	PersonelGuncelle(ctx context.Context, id uint, req dto.GuncellePersonelRequest) (*dto.PersonelResponse, error)
	PersonelDeaktive(ctx context.Context, id uint) error
	PersonelReaktive(ctx context.Context, id uint) error
}

type authService struct {
	repo repository.PersonelRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.PersonelRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	p, err := s.repo.FindByKullaniciAdi(ctx, req.KullaniciAdi)
	if err != nil || !p.Aktif {
		return nil, errors.New("gecersiz kullanici adi veya sifre")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(p.SifreHash), []byte(req.Sifre)); err != nil {
		return nil, errors.New("gecersiz kullanici adi veya sifre")
	}
	return s.tokenResponse(p)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("refresh token gecersiz veya suresi dolmus")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("token bicimi bozuk")
	}
	idF, ok := claims["personel_id"].(float64)
	if !ok {
		return nil, errors.New("token bicimi bozuk")
	}

	p, err := s.repo.FindByID(ctx, uint(idF))
	if err != nil || !p.Aktif {
		return nil, errors.New("personel bulunamadi veya aktif degil")
	}
	return s.tokenResponse(p)
}

func (s *authService) PersonelOlustur(ctx context.Context, req dto.OlusturPersonelRequest) (*dto.PersonelResponse, error) {
	if existing, err := s.repo.FindByKullaniciAdi(ctx, req.KullaniciAdi); err == nil && existing != nil {
		return nil, &ValidationError{Alan: "kullanici_adi", Neden: "bu kullanici adi zaten kayitli"}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Sifre), 12)
	if err != nil {
		return nil, err
	}
	p := &model.Personel{
		KullaniciAdi: req.KullaniciAdi,
		AdSoyad:      req.AdSoyad,
		Eposta:       req.Eposta,
		SifreHash:    string(hash),
		Rol:          req.Rol,
		Aktif:        true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return personelToResponse(p), nil
}

func (s *authService) PersonelListele(ctx context.Context, hepsi bool) ([]dto.PersonelResponse, error) {
	personeller, err := s.repo.List(ctx, hepsi)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PersonelResponse, 0, len(personeller))
	for i := range personeller {
		resp = append(resp, *personelToResponse(&personeller[i]))
	}
	return resp, nil
}

func (s *authService) PersonelGuncelle(ctx context.Context, id uint, req dto.GuncellePersonelRequest) (*dto.PersonelResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, &NotFoundError{Kaynak: "personel", ID: id}
	}
	if req.AdSoyad != "" {
		p.AdSoyad = req.AdSoyad
	}
	if req.Eposta != nil {
		p.Eposta = req.Eposta
	}
	if req.Rol != "" {
		p.Rol = req.Rol
	}
	if req.Sifre != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Sifre), 12)
		if err != nil {
			return nil, err
		}
		p.SifreHash = string(hash)
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return personelToResponse(p), nil
}

func (s *authService) PersonelDeaktive(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return &NotFoundError{Kaynak: "personel", ID: id}
	}
	return s.repo.SoftDelete(ctx, id)
}

func (s *authService) PersonelReaktive(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return &NotFoundError{Kaynak: "personel", ID: id}
	}
	return s.repo.Reactivate(ctx, id)
}

func (s *authService) tokenResponse(p *model.Personel) (*dto.LoginResponse, error) {
	access, err := s.generateToken(p, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	refresh, err := s.generateToken(p, time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		ExpiresIn:    s.cfg.JWTExpirationHours * 3600,
		Personel:     *personelToResponse(p),
	}, nil
}

func (s *authService) generateToken(p *model.Personel, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"personel_id":   p.ID,
		"kullanici_adi": p.KullaniciAdi,
		"rol":           p.Rol,
		"exp":           time.Now().Add(duration).Unix(),
		"iat":           time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func personelToResponse(p *model.Personel) *dto.PersonelResponse {
	return &dto.PersonelResponse{
		ID:           p.ID,
		KullaniciAdi: p.KullaniciAdi,
		AdSoyad:      p.AdSoyad,
		Eposta:       p.Eposta,
		Rol:          p.Rol,
		Aktif:        p.Aktif,
	}
}
