package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/reportlab/account-service/internal/core/domain"
	"github.com/reportlab/account-service/internal/core/ports"
)

// stubAccountStore backs an AccountService with in-memory client and partner
// tables. Tx runs the callback directly against the store.
type stubAccountStore struct {
	clients  []domain.ClientInfo
	partners []domain.PartnerInfo
}

func (s *stubAccountStore) Tx(_ context.Context, fn func(tx ports.AccountTx) error) error {
	return fn(s)
}

func (s *stubAccountStore) ClientByOwner(_ context.Context, ownerID int64) (*domain.ClientInfo, error) {
	for i := range s.clients {
		if s.clients[i].OwnerID == ownerID {
			c := s.clients[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (s *stubAccountStore) ClientShortNameTaken(_ context.Context, name string) (bool, error) {
	for i := range s.clients {
		if s.clients[i].CompanyShortName == name {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubAccountStore) CountClients(_ context.Context) (int64, error) {
	return int64(len(s.clients)), nil
}

func (s *stubAccountStore) InsertClient(_ context.Context, client *domain.ClientInfo) error {
	client.ID = int64(len(s.clients) + 1)
	s.clients = append(s.clients, *client)
	return nil
}

func (s *stubAccountStore) PartnerByOwner(_ context.Context, ownerID int64) (*domain.PartnerInfo, error) {
	for i := range s.partners {
		if s.partners[i].OwnerID == ownerID {
			p := s.partners[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (s *stubAccountStore) PartnerByClientAndOwner(_ context.Context, clientID string, ownerID int64) (*domain.PartnerInfo, error) {
	for i := range s.partners {
		if s.partners[i].ClientID == clientID && s.partners[i].OwnerID == ownerID {
			p := s.partners[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (s *stubAccountStore) PartnerShortNameTaken(_ context.Context, name string) (bool, error) {
	for i := range s.partners {
		if s.partners[i].CompanyShortName == name {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubAccountStore) MaxPartnerRow(_ context.Context) (int64, error) {
	var max int64
	for i := range s.partners {
		if s.partners[i].ID > max {
			max = s.partners[i].ID
		}
	}
	return max, nil
}

func (s *stubAccountStore) InsertPartner(_ context.Context, partner *domain.PartnerInfo) error {
	partner.ID = int64(len(s.partners) + 1)
	s.partners = append(s.partners, *partner)
	return nil
}

func newAccountFixture(seed ...*domain.User) (*stubUserRepo, *stubAccountStore, *AccountService) {
	users := newStubUserRepo(seed...)
	store := &stubAccountStore{}
	return users, store, NewAccountService(users, store, zerolog.Nop())
}

func clientUser(id int64, username string) *domain.User {
	return &domain.User{ID: id, Username: username, IsActive: true, Role: domain.RoleClient}
}

func asPrincipal(u *domain.User) ports.Principal {
	return ports.Principal{ID: u.ID, Username: u.Username, Role: u.Role}
}

func clientInput(shortName string) ports.RegisterClientInput {
	return ports.RegisterClientInput{
		CompanyShortName: shortName,
		CompanyFullName:  shortName + " Diagnostics Ltd",
		CompanyEmail:     shortName + "@example.com",
		CompanyPhone:     "5550001111",
		CompanyWebsite:   shortName + ".example.com",
		CompanyAddress:   "12 Harbour Road, Springfield",
	}
}

func partnerInput(username, shortName, billTo string) ports.RegisterPartnerInput {
	return ports.RegisterPartnerInput{
		PartnerUsername:  username,
		CompanyShortName: shortName,
		CompanyFullName:  shortName + " Logistics Ltd",
		CompanyEmail:     shortName + "@example.com",
		CompanyPhone:     "5550002222",
		CompanyWebsite:   shortName + ".example.com",
		CompanyAddress:   "34 Station Street, Springfield",
		BillTo:           billTo,
	}
}

func TestRegisterClient_AssignsSequentialIDs(t *testing.T) {
	alice := clientUser(1, "alice")
	bob := clientUser(2, "bob")
	_, store, svc := newAccountFixture(alice, bob)

	first, err := svc.RegisterClient(context.Background(), asPrincipal(alice), clientInput("acme"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ClientID != "C0001" {
		t.Fatalf("expected C0001, got %s", first.ClientID)
	}
	if first.OwnerID != alice.ID {
		t.Fatalf("expected owner %d, got %d", alice.ID, first.OwnerID)
	}
	if first.CurrencyType != domain.DefaultCurrency {
		t.Fatalf("expected default currency, got %q", first.CurrencyType)
	}

	second, err := svc.RegisterClient(context.Background(), asPrincipal(bob), clientInput("globex"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.ClientID != "C0002" {
		t.Fatalf("expected C0002, got %s", second.ClientID)
	}
	if len(store.clients) != 2 {
		t.Fatalf("expected 2 client rows, got %d", len(store.clients))
	}
}

func TestRegisterClient_RequestedCurrencyKept(t *testing.T) {
	alice := clientUser(1, "alice")
	_, _, svc := newAccountFixture(alice)

	in := clientInput("acme")
	in.CurrencyType = "EUR"
	created, err := svc.RegisterClient(context.Background(), asPrincipal(alice), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.CurrencyType != "EUR" {
		t.Fatalf("expected EUR, got %q", created.CurrencyType)
	}
}

func TestRegisterClient_SecondRegistrationConflicts(t *testing.T) {
	alice := clientUser(1, "alice")
	_, store, svc := newAccountFixture(alice)

	if _, err := svc.RegisterClient(context.Background(), asPrincipal(alice), clientInput("acme")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := svc.RegisterClient(context.Background(), asPrincipal(alice), clientInput("initech"))
	if !errors.Is(err, domain.ErrClientExists) {
		t.Fatalf("expected ErrClientExists, got %v", err)
	}
	if len(store.clients) != 1 {
		t.Fatalf("conflicting registration must not write, got %d rows", len(store.clients))
	}
}

func TestRegisterClient_ShortNameTaken(t *testing.T) {
	alice := clientUser(1, "alice")
	bob := clientUser(2, "bob")
	_, _, svc := newAccountFixture(alice, bob)

	if _, err := svc.RegisterClient(context.Background(), asPrincipal(alice), clientInput("acme")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := svc.RegisterClient(context.Background(), asPrincipal(bob), clientInput("acme"))
	if !errors.Is(err, domain.ErrCompanyNameTaken) {
		t.Fatalf("expected ErrCompanyNameTaken, got %v", err)
	}
}

func TestRegisterClient_RoleDenied(t *testing.T) {
	carol := &domain.User{ID: 1, Username: "carol", IsActive: true, Role: domain.RoleB2C}
	_, store, svc := newAccountFixture(carol)

	_, err := svc.RegisterClient(context.Background(), asPrincipal(carol), clientInput("acme"))
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(store.clients) != 0 {
		t.Fatalf("denied registration must not write")
	}
}

func TestRegisterClient_InactiveActor(t *testing.T) {
	alice := clientUser(1, "alice")
	alice.IsActive = false
	_, store, svc := newAccountFixture(alice)

	_, err := svc.RegisterClient(context.Background(), asPrincipal(alice), clientInput("acme"))
	if !errors.Is(err, domain.ErrUserInactive) {
		t.Fatalf("expected ErrUserInactive, got %v", err)
	}
	if len(store.clients) != 0 {
		t.Fatalf("inactive actor must not write")
	}
}

func TestRegisterClient_MissingPrincipal(t *testing.T) {
	_, _, svc := newAccountFixture()

	_, err := svc.RegisterClient(context.Background(), ports.Principal{}, clientInput("acme"))
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestRegisterPartner_BillToClientDropsCurrency(t *testing.T) {
	alice := clientUser(1, "alice")
	wendy := &domain.User{ID: 2, Username: "wendy", IsActive: true, Role: domain.RolePartner}
	_, _, svc := newAccountFixture(alice, wendy)

	if _, err := svc.RegisterClient(context.Background(), asPrincipal(alice), clientInput("acme")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in := partnerInput("wendy", "wexpress", domain.BillToClient)
	in.CurrencyType = "EUR"
	created, err := svc.RegisterPartner(context.Background(), asPrincipal(alice), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.PartnerID != "P0001" {
		t.Fatalf("expected P0001, got %s", created.PartnerID)
	}
	if created.ClientID != "C0001" {
		t.Fatalf("expected sponsor C0001, got %s", created.ClientID)
	}
	if created.CurrencyType != "" {
		t.Fatalf("client-billed partner must persist no currency, got %q", created.CurrencyType)
	}
	if created.OwnerID != wendy.ID {
		t.Fatalf("expected owner %d, got %d", wendy.ID, created.OwnerID)
	}
}

func TestRegisterPartner_BillToPartnerKeepsCurrency(t *testing.T) {
	alice := clientUser(1, "alice")
	wendy := &domain.User{ID: 2, Username: "wendy", IsActive: true, Role: domain.RolePartner}
	_, _, svc := newAccountFixture(alice, wendy)

	if _, err := svc.RegisterClient(context.Background(), asPrincipal(alice), clientInput("acme")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in := partnerInput("wendy", "wexpress", domain.BillToPartner)
	in.CurrencyType = "INR"
	created, err := svc.RegisterPartner(context.Background(), asPrincipal(alice), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.CurrencyType != "INR" {
		t.Fatalf("expected INR, got %q", created.CurrencyType)
	}
}

func TestRegisterPartner_ReusesPartnerIDAcrossSponsors(t *testing.T) {
	alice := clientUser(1, "alice")
	bob := clientUser(2, "bob")
	wendy := &domain.User{ID: 3, Username: "wendy", IsActive: true, Role: domain.RolePartner}
	_, store, svc := newAccountFixture(alice, bob, wendy)

	if _, err := svc.RegisterClient(context.Background(), asPrincipal(alice), clientInput("acme")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.RegisterClient(context.Background(), asPrincipal(bob), clientInput("globex")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, err := svc.RegisterPartner(context.Background(), asPrincipal(alice), partnerInput("wendy", "wexpress", domain.BillToClient))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.RegisterPartner(context.Background(), asPrincipal(bob), partnerInput("wendy", "wfreight", domain.BillToClient))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.PartnerID != "P0001" || second.PartnerID != "P0001" {
		t.Fatalf("expected the same partner identity under both sponsors, got %s and %s", first.PartnerID, second.PartnerID)
	}
	if first.ClientID == second.ClientID {
		t.Fatalf("expected distinct sponsoring clients")
	}
	if len(store.partners) != 2 {
		t.Fatalf("expected 2 partner rows, got %d", len(store.partners))
	}
}

func TestRegisterPartner_DuplicatePairConflicts(t *testing.T) {
	alice := clientUser(1, "alice")
	wendy := &domain.User{ID: 2, Username: "wendy", IsActive: true, Role: domain.RolePartner}
	_, store, svc := newAccountFixture(alice, wendy)

	if _, err := svc.RegisterClient(context.Background(), asPrincipal(alice), clientInput("acme")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.RegisterPartner(context.Background(), asPrincipal(alice), partnerInput("wendy", "wexpress", domain.BillToClient)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := svc.RegisterPartner(context.Background(), asPrincipal(alice), partnerInput("wendy", "wfreight", domain.BillToClient))
	if !errors.Is(err, domain.ErrPartnerExists) {
		t.Fatalf("expected ErrPartnerExists, got %v", err)
	}
	if len(store.partners) != 1 {
		t.Fatalf("duplicate pair must not write, got %d rows", len(store.partners))
	}
}

func TestRegisterPartner_WithoutClientRegistration(t *testing.T) {
	alice := clientUser(1, "alice")
	wendy := &domain.User{ID: 2, Username: "wendy", IsActive: true, Role: domain.RolePartner}
	_, _, svc := newAccountFixture(alice, wendy)

	_, err := svc.RegisterPartner(context.Background(), asPrincipal(alice), partnerInput("wendy", "wexpress", domain.BillToClient))
	if !errors.Is(err, domain.ErrClientRequired) {
		t.Fatalf("expected ErrClientRequired, got %v", err)
	}
}

func TestRegisterPartner_UnknownPartnerUsername(t *testing.T) {
	alice := clientUser(1, "alice")
	_, _, svc := newAccountFixture(alice)

	if _, err := svc.RegisterClient(context.Background(), asPrincipal(alice), clientInput("acme")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := svc.RegisterPartner(context.Background(), asPrincipal(alice), partnerInput("ghost", "gexpress", domain.BillToClient))
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestRegisterPartner_ShortNameTaken(t *testing.T) {
	alice := clientUser(1, "alice")
	wendy := &domain.User{ID: 2, Username: "wendy", IsActive: true, Role: domain.RolePartner}
	victor := &domain.User{ID: 3, Username: "victor", IsActive: true, Role: domain.RolePartner}
	_, _, svc := newAccountFixture(alice, wendy, victor)

	if _, err := svc.RegisterClient(context.Background(), asPrincipal(alice), clientInput("acme")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.RegisterPartner(context.Background(), asPrincipal(alice), partnerInput("wendy", "wexpress", domain.BillToClient)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := svc.RegisterPartner(context.Background(), asPrincipal(alice), partnerInput("victor", "wexpress", domain.BillToClient))
	if !errors.Is(err, domain.ErrCompanyNameTaken) {
		t.Fatalf("expected ErrCompanyNameTaken, got %v", err)
	}
}
