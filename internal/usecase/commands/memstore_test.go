//go:build unit

package commands_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"parking-core/internal/domain/lot"
	"parking-core/internal/domain/reservation"
	"parking-core/internal/domain/spot"
	"parking-core/internal/domain/user"
	"parking-core/internal/infra"
	"parking-core/internal/infra/repository"
	sqlc "parking-core/internal/infra/sqlc/generated"
	"parking-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// memStore is an in-memory UnitOfWork. Transactions are serialized on mu and
// rolled back to a snapshot when fn fails.
type memStore struct {
	mu           sync.Mutex
	lots         map[uuid.UUID]lotRec
	spots        map[uuid.UUID]spotRec
	reservations map[uuid.UUID]resRec
	users        map[uuid.UUID]userRec
	failWith     error

	// shortRemovable makes that many RemovableSpots calls return one row
	// fewer, as a concurrent claim would.
	shortRemovable int
}

type lotRec struct {
	id        uuid.UUID
	attrs     lot.Attributes
	spots     int
	createdAt time.Time
	updatedAt time.Time
}

type spotRec struct {
	id        uuid.UUID
	lotID     uuid.UUID
	number    string
	status    spot.Status
	createdAt time.Time
}

type resRec struct {
	id         uuid.UUID
	spotID     uuid.UUID
	userID     uuid.UUID
	vehicle    reservation.VehicleNumber
	status     reservation.Status
	reservedAt time.Time
	parkedInAt *time.Time
	releasedAt *time.Time
	cost       *decimal.Decimal
	createdAt  time.Time
	updatedAt  time.Time
}

type userRec struct {
	id        uuid.UUID
	email     user.Email
	fullName  user.FullName
	hash      string
	role      user.Role
	lastLogin *time.Time
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

var seedTime = time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

func newMemStore() *memStore {
	return &memStore{
		lots:         map[uuid.UUID]lotRec{},
		spots:        map[uuid.UUID]spotRec{},
		reservations: map[uuid.UUID]resRec{},
		users:        map[uuid.UUID]userRec{},
	}
}

type memSnapshot struct {
	lots         map[uuid.UUID]lotRec
	spots        map[uuid.UUID]spotRec
	reservations map[uuid.UUID]resRec
	users        map[uuid.UUID]userRec
}

func cloneMap[V any](in map[uuid.UUID]V) map[uuid.UUID]V {
	out := make(map[uuid.UUID]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func (m *memStore) snapshot() memSnapshot {
	return memSnapshot{
		lots:         cloneMap(m.lots),
		spots:        cloneMap(m.spots),
		reservations: cloneMap(m.reservations),
		users:        cloneMap(m.users),
	}
}

func (m *memStore) restore(s memSnapshot) {
	m.lots = s.lots
	m.spots = s.spots
	m.reservations = s.reservations
	m.users = s.users
}

func (m *memStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return infra.WrapRepoErr("begin transaction", m.failWith)
	}
	snap := m.snapshot()
	if err := fn(ctx, memTx{m: m}); err != nil {
		m.restore(snap)
		return err
	}
	return nil
}

func (m *memStore) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx, nil)
}

func (m *memStore) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx, nil)
}

type memTx struct{ m *memStore }

func (t memTx) Spots() shared.SpotRepository               { return memSpots(t) }
func (t memTx) Reservations() shared.ReservationRepository { return memReservations(t) }
func (t memTx) Lots() shared.LotRepository                 { return memLots(t) }
func (t memTx) Users() shared.UserRepository               { return memUsers(t) }
func (t memTx) DB() sqlc.DBTX                              { return nil }

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

func foreignKeyViolation(constraint string) error {
	return &pgconn.PgError{Code: "23503", ConstraintName: constraint}
}

// Seeding and inspection helpers take the lock themselves and must not be
// called from inside a transaction.

func (m *memStore) seedUser(email string, role user.Role, active bool, hash string) uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, err := user.NewEmail(email)
	if err != nil {
		panic(err)
	}
	name, _ := user.NewFullName("Test User")
	id := uuid.New()
	m.users[id] = userRec{
		id:        id,
		email:     e,
		fullName:  name,
		hash:      hash,
		role:      role,
		active:    active,
		createdAt: seedTime,
		updatedAt: seedTime,
	}
	return id
}

func (m *memStore) seedLot(name, price string, n int) (uuid.UUID, []uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	attrs, err := lot.NewAttributes(name, decimal.RequireFromString(price), "1 Main Road", "560001")
	if err != nil {
		panic(err)
	}
	id := uuid.New()
	m.lots[id] = lotRec{id: id, attrs: attrs, spots: n, createdAt: seedTime, updatedAt: seedTime}
	ids := make([]uuid.UUID, 0, n)
	for _, number := range spot.Numbers(name, 0, n) {
		sid := uuid.New()
		m.spots[sid] = spotRec{id: sid, lotID: id, number: number, status: spot.StatusAvailable, createdAt: seedTime}
		ids = append(ids, sid)
	}
	return id, ids
}

func (m *memStore) spotStatus(id uuid.UUID) spot.Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.spots[id].status
}

func (m *memStore) reservation(id uuid.UUID) (resRec, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reservations[id]
	return r, ok
}

func (m *memStore) lotSpotCount(id uuid.UUID) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.lots[id]
	return l.spots, ok
}

func (m *memStore) spotNumbers(lotID uuid.UUID) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, s := range m.sortedSpots(lotID) {
		out = append(out, s.number)
	}
	return out
}

func (m *memStore) userActive(id uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.users[id].active
}

func (m *memStore) userFullName(id uuid.UUID) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.users[id].fullName.Value()
}

func (m *memStore) userLastLogin(id uuid.UUID) *time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.users[id].lastLogin
}

// occupancy returns the number of occupied spots and active reservations, and
// whether any spot or user holds more than one active reservation.
func (m *memStore) occupancy() (occupied, active int, doubleBooked bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.spots {
		if s.status == spot.StatusOccupied {
			occupied++
		}
	}
	perSpot := map[uuid.UUID]int{}
	perUser := map[uuid.UUID]int{}
	for _, r := range m.reservations {
		if r.status != reservation.StatusActive {
			continue
		}
		active++
		perSpot[r.spotID]++
		perUser[r.userID]++
		if perSpot[r.spotID] > 1 || perUser[r.userID] > 1 {
			doubleBooked = true
		}
		if m.spots[r.spotID].status != spot.StatusOccupied {
			doubleBooked = true
		}
	}
	return occupied, active, doubleBooked
}

func (m *memStore) sortedSpots(lotID uuid.UUID) []spotRec {
	var out []spotRec
	for _, s := range m.spots {
		if s.lotID == lotID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].number < out[j].number })
	return out
}

func (m *memStore) activeFor(match func(resRec) bool) *resRec {
	for _, r := range m.reservations {
		if r.status == reservation.StatusActive && match(r) {
			return &r
		}
	}
	return nil
}

func (s spotRec) domain() *spot.Spot {
	return spot.ReconstructSpot(s.id, s.lotID, s.number, s.status, s.createdAt)
}

func (l lotRec) domain() *lot.Lot {
	return lot.ReconstructLot(l.id, l.attrs, l.spots, l.createdAt, l.updatedAt)
}

func (r resRec) domain() *reservation.Reservation {
	return reservation.ReconstructReservation(
		r.id, r.spotID, r.userID, r.vehicle, r.status,
		r.reservedAt, r.parkedInAt, r.releasedAt, r.cost,
		r.createdAt, r.updatedAt,
	)
}

func (u userRec) domain() *user.User {
	return user.ReconstructUser(u.id, u.email, u.fullName, u.hash, u.role, u.lastLogin, u.active, u.createdAt, u.updatedAt)
}

func toSpots(recs []spotRec) []*spot.Spot {
	out := make([]*spot.Spot, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.domain())
	}
	return out
}

type memSpots memTx

func (r memSpots) FindByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*spot.Spot, error) {
	s, ok := r.m.spots[id]
	if !ok {
		return nil, infra.WrapRepoErr("spot not found", nil, infra.KindNotFound)
	}
	return s.domain(), nil
}

func (r memSpots) FindAvailable(_ context.Context, _ sqlc.DBTX, lotID uuid.UUID) ([]*spot.Spot, error) {
	var out []spotRec
	for _, s := range r.m.sortedSpots(lotID) {
		if s.status == spot.StatusAvailable {
			out = append(out, s)
		}
	}
	return toSpots(out), nil
}

func (r memSpots) ListByLot(_ context.Context, _ sqlc.DBTX, lotID uuid.UUID) ([]*spot.Spot, error) {
	return toSpots(r.m.sortedSpots(lotID)), nil
}

func (r memSpots) LockByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*spot.Spot, error) {
	return r.FindByID(ctx, db, id)
}

func (r memSpots) Claim(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*spot.Spot, error) {
	s, ok := r.m.spots[id]
	if !ok {
		return nil, infra.WrapRepoErr("spot not found", nil, infra.KindNotFound)
	}
	if s.status != spot.StatusAvailable {
		return nil, infra.WrapRepoErr("spot already occupied", nil, infra.KindConflict)
	}
	s.status = spot.StatusOccupied
	r.m.spots[id] = s
	return s.domain(), nil
}

func (r memSpots) Release(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	s, ok := r.m.spots[id]
	if !ok {
		return infra.WrapRepoErr("spot not found", nil, infra.KindNotFound)
	}
	s.status = spot.StatusAvailable
	r.m.spots[id] = s
	return nil
}

func (r memSpots) SetStatus(_ context.Context, _ sqlc.DBTX, id uuid.UUID, status spot.Status) (*spot.Spot, error) {
	s, ok := r.m.spots[id]
	if !ok {
		return nil, infra.WrapRepoErr("spot not found", nil, infra.KindNotFound)
	}
	s.status = status
	r.m.spots[id] = s
	return s.domain(), nil
}

func (r memSpots) AddSpots(_ context.Context, _ sqlc.DBTX, lotID uuid.UUID, numbers []string) ([]*spot.Spot, error) {
	if _, ok := r.m.lots[lotID]; !ok {
		return nil, infra.WrapRepoErr("failed to add spots", foreignKeyViolation("parking_spots_lot_id_fkey"))
	}
	taken := map[string]struct{}{}
	for _, s := range r.m.sortedSpots(lotID) {
		taken[s.number] = struct{}{}
	}
	out := make([]*spot.Spot, 0, len(numbers))
	for _, n := range numbers {
		if _, dup := taken[n]; dup {
			return nil, infra.WrapRepoErr("failed to add spots", uniqueViolation("parking_spots_lot_id_spot_number_key"))
		}
		taken[n] = struct{}{}
		s := spotRec{id: uuid.New(), lotID: lotID, number: n, status: spot.StatusAvailable, createdAt: seedTime}
		r.m.spots[s.id] = s
		out = append(out, s.domain())
	}
	return out, nil
}

func (r memSpots) RemoveSpots(_ context.Context, _ sqlc.DBTX, lotID uuid.UUID, ids []uuid.UUID) (int64, error) {
	seen := map[uuid.UUID]struct{}{}
	var unique []uuid.UUID
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	for _, id := range unique {
		s, ok := r.m.spots[id]
		if !ok {
			return 0, infra.WrapRepoErr("spot not found", nil, infra.KindNotFound)
		}
		if s.lotID != lotID {
			return 0, infra.WrapRepoErr("spot does not belong to lot", nil, infra.KindNotFound)
		}
		if s.status != spot.StatusAvailable {
			return 0, infra.WrapRepoErr("spot is occupied", nil, infra.KindConflict)
		}
	}
	for _, id := range unique {
		delete(r.m.spots, id)
		for rid, res := range r.m.reservations {
			if res.spotID == id {
				delete(r.m.reservations, rid)
			}
		}
	}
	return int64(len(unique)), nil
}

func (r memSpots) RemovableSpots(_ context.Context, _ sqlc.DBTX, lotID uuid.UUID, limit int) ([]*spot.Spot, error) {
	all := r.m.sortedSpots(lotID)
	var out []spotRec
	for i := len(all) - 1; i >= 0 && len(out) < limit; i-- {
		s := all[i]
		if s.status != spot.StatusAvailable {
			continue
		}
		if r.m.activeFor(func(res resRec) bool { return res.spotID == s.id }) != nil {
			continue
		}
		out = append(out, s)
	}
	if r.m.shortRemovable > 0 && len(out) > 0 {
		r.m.shortRemovable--
		out = out[:len(out)-1]
	}
	return toSpots(out), nil
}

type memReservations memTx

func (r memReservations) FindByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	res, ok := r.m.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return res.domain(), nil
}

func (r memReservations) LockByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	return r.FindByID(ctx, db, id)
}

func (r memReservations) ActiveForUser(_ context.Context, _ sqlc.DBTX, userID uuid.UUID) (*reservation.Reservation, error) {
	if res := r.m.activeFor(func(res resRec) bool { return res.userID == userID }); res != nil {
		return res.domain(), nil
	}
	return nil, nil
}

func (r memReservations) ActiveForSpot(_ context.Context, _ sqlc.DBTX, spotID uuid.UUID) (*reservation.Reservation, error) {
	if res := r.m.activeFor(func(res resRec) bool { return res.spotID == spotID }); res != nil {
		return res.domain(), nil
	}
	return nil, nil
}

func (r memReservations) Create(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) error {
	if _, ok := r.m.users[res.UserID()]; !ok {
		return infra.WrapRepoErr("failed to create reservation", foreignKeyViolation("reservations_user_id_fkey"))
	}
	if _, ok := r.m.spots[res.SpotID()]; !ok {
		return infra.WrapRepoErr("failed to create reservation", foreignKeyViolation("reservations_spot_id_fkey"))
	}
	if res.IsActive() {
		if r.m.activeFor(func(x resRec) bool { return x.userID == res.UserID() }) != nil {
			return infra.WrapRepoErr("failed to create reservation", uniqueViolation(repository.ConstraintActiveUser))
		}
		if r.m.activeFor(func(x resRec) bool { return x.spotID == res.SpotID() }) != nil {
			return infra.WrapRepoErr("failed to create reservation", uniqueViolation(repository.ConstraintActiveSpot))
		}
	}
	r.m.reservations[res.ID()] = resRec{
		id:         res.ID(),
		spotID:     res.SpotID(),
		userID:     res.UserID(),
		vehicle:    res.VehicleNumber(),
		status:     res.Status(),
		reservedAt: res.ReservedAt(),
		parkedInAt: res.ParkedInAt(),
		releasedAt: res.ReleasedAt(),
		cost:       res.Cost(),
		createdAt:  res.CreatedAt(),
		updatedAt:  res.UpdatedAt(),
	}
	return nil
}

func (r memReservations) transition(id uuid.UUID, apply func(*resRec) error) error {
	res, ok := r.m.reservations[id]
	if !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	if res.status.IsTerminal() {
		return infra.WrapRepoErr("reservation transition rejected", reservation.ErrAlreadyReleased, infra.KindConflict)
	}
	if err := apply(&res); err != nil {
		return err
	}
	r.m.reservations[id] = res
	return nil
}

func (r memReservations) MarkParkedIn(_ context.Context, _ sqlc.DBTX, id uuid.UUID, at time.Time) error {
	return r.transition(id, func(res *resRec) error {
		if res.parkedInAt != nil {
			return infra.WrapRepoErr("reservation transition rejected", reservation.ErrAlreadyParkedIn, infra.KindConflict)
		}
		res.parkedInAt = &at
		res.updatedAt = at
		return nil
	})
}

func (r memReservations) Complete(_ context.Context, _ sqlc.DBTX, id uuid.UUID, at time.Time, cost decimal.Decimal) error {
	return r.transition(id, func(res *resRec) error {
		res.status = reservation.StatusCompleted
		res.releasedAt = &at
		res.cost = &cost
		res.updatedAt = at
		return nil
	})
}

func (r memReservations) Cancel(_ context.Context, _ sqlc.DBTX, id uuid.UUID, at time.Time) error {
	return r.transition(id, func(res *resRec) error {
		zero := decimal.Zero
		res.status = reservation.StatusCancelled
		res.releasedAt = &at
		res.cost = &zero
		res.updatedAt = at
		return nil
	})
}

func (r memReservations) DeleteTerminalBefore(_ context.Context, _ sqlc.DBTX, cutoff time.Time) (int64, error) {
	var n int64
	for id, res := range r.m.reservations {
		if res.status.IsTerminal() && res.createdAt.Before(cutoff) {
			delete(r.m.reservations, id)
			n++
		}
	}
	return n, nil
}

type memLots memTx

func (r memLots) nameTaken(name string, except uuid.UUID) bool {
	for _, l := range r.m.lots {
		if l.id != except && l.attrs.Name.Value() == name {
			return true
		}
	}
	return false
}

func (r memLots) Create(_ context.Context, _ sqlc.DBTX, l *lot.Lot) error {
	if r.nameTaken(l.Name().Value(), uuid.Nil) {
		return infra.WrapRepoErr("failed to create lot", uniqueViolation("parking_lots_name_key"))
	}
	r.m.lots[l.ID()] = lotRec{
		id:        l.ID(),
		attrs:     l.Attributes(),
		spots:     l.NumberOfSpots(),
		createdAt: l.CreatedAt(),
		updatedAt: l.UpdatedAt(),
	}
	return nil
}

func (r memLots) FindByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*lot.Lot, error) {
	l, ok := r.m.lots[id]
	if !ok {
		return nil, infra.WrapRepoErr("lot not found", nil, infra.KindNotFound)
	}
	return l.domain(), nil
}

func (r memLots) LockByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*lot.Lot, error) {
	return r.FindByID(ctx, db, id)
}

func (r memLots) Update(_ context.Context, _ sqlc.DBTX, l *lot.Lot) error {
	rec, ok := r.m.lots[l.ID()]
	if !ok {
		return infra.WrapRepoErr("lot not found", nil, infra.KindNotFound)
	}
	if r.nameTaken(l.Name().Value(), l.ID()) {
		return infra.WrapRepoErr("failed to update lot", uniqueViolation("parking_lots_name_key"))
	}
	rec.attrs = l.Attributes()
	rec.updatedAt = l.UpdatedAt()
	r.m.lots[l.ID()] = rec
	return nil
}

func (r memLots) Delete(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	if _, ok := r.m.lots[id]; !ok {
		return infra.WrapRepoErr("lot not found", nil, infra.KindNotFound)
	}
	delete(r.m.lots, id)
	for sid, s := range r.m.spots {
		if s.lotID != id {
			continue
		}
		delete(r.m.spots, sid)
		for rid, res := range r.m.reservations {
			if res.spotID == sid {
				delete(r.m.reservations, rid)
			}
		}
	}
	return nil
}

func (r memLots) OccupiedSpotCount(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (int64, error) {
	var n int64
	for _, s := range r.m.sortedSpots(id) {
		if s.status == spot.StatusOccupied {
			n++
		}
	}
	return n, nil
}

func (r memLots) SyncSpotCount(_ context.Context, _ sqlc.DBTX, id uuid.UUID, at time.Time) (int, error) {
	rec, ok := r.m.lots[id]
	if !ok {
		return 0, infra.WrapRepoErr("lot not found", nil, infra.KindNotFound)
	}
	rec.spots = len(r.m.sortedSpots(id))
	rec.updatedAt = at
	r.m.lots[id] = rec
	return rec.spots, nil
}

type memUsers memTx

func (r memUsers) Create(_ context.Context, _ sqlc.DBTX, u *user.User) error {
	for _, existing := range r.m.users {
		if existing.email.Value() == u.Email().Value() {
			return infra.WrapRepoErr("failed to create user", uniqueViolation("users_email_key"))
		}
	}
	r.m.users[u.ID()] = userRec{
		id:        u.ID(),
		email:     u.Email(),
		fullName:  u.FullName(),
		hash:      u.PasswordHash(),
		role:      u.Role(),
		lastLogin: u.LastLogin(),
		active:    u.IsActive(),
		createdAt: u.CreatedAt(),
		updatedAt: u.UpdatedAt(),
	}
	return nil
}

func (r memUsers) FindByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*user.User, error) {
	u, ok := r.m.users[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return u.domain(), nil
}

func (r memUsers) FindByEmail(_ context.Context, _ sqlc.DBTX, email user.Email) (*user.User, error) {
	for _, u := range r.m.users {
		if u.email.Value() == email.Value() {
			return u.domain(), nil
		}
	}
	return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
}

func (r memUsers) LockByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*user.User, error) {
	return r.FindByID(ctx, db, id)
}

func (r memUsers) UpdateLastLogin(_ context.Context, _ sqlc.DBTX, id uuid.UUID, at time.Time) error {
	u, ok := r.m.users[id]
	if !ok {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	u.lastLogin = &at
	u.updatedAt = at
	r.m.users[id] = u
	return nil
}

func (r memUsers) SetActive(_ context.Context, _ sqlc.DBTX, id uuid.UUID, active bool, at time.Time) error {
	u, ok := r.m.users[id]
	if !ok {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	u.active = active
	u.updatedAt = at
	r.m.users[id] = u
	return nil
}

func (r memUsers) UpdateFullName(_ context.Context, _ sqlc.DBTX, id uuid.UUID, name user.FullName, at time.Time) error {
	u, ok := r.m.users[id]
	if !ok {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	u.fullName = name
	u.updatedAt = at
	r.m.users[id] = u
	return nil
}

func (r memUsers) CountByRole(_ context.Context, _ sqlc.DBTX, role user.Role) (int64, error) {
	var n int64
	for _, u := range r.m.users {
		if u.role == role {
			n++
		}
	}
	return n, nil
}
