package ledger

import (
	"errors"
	"strconv"
	"sync"

	"github.com/fortniteiabot/fortnitecoach/store"
	"github.com/fortniteiabot/fortnitecoach/types"
	"github.com/rs/zerolog/log"
)

var (
	ErrSelfReferral    = errors.New("cannot use your own referral code")
	ErrAlreadyReferred = errors.New("referral code already used")
)

// BonusDays is the premium credit a referrer receives the first time a
// referred user becomes entitled.
const BonusDays = 7

// ReferralLedger owns the referral record set. Bonus issuance goes
// through the premium manager; the optional notify callback fires after
// a bonus is committed, so a failed send never rolls ledger state back.
type ReferralLedger struct {
	store   store.RecordStore
	premium *PremiumManager
	notify  func(referrerID int64)
	mu      sync.Mutex
}

func NewReferralLedger(st store.RecordStore, premium *PremiumManager, notify func(referrerID int64)) *ReferralLedger {
	return &ReferralLedger{store: st, premium: premium, notify: notify}
}

func (l *ReferralLedger) records() types.ReferralRecords {
	recs := types.ReferralRecords{}
	l.store.Load(store.SetReferrals, &recs)
	return recs
}

// Record returns the user's referral node, zero-valued when unknown.
func (l *ReferralLedger) Record(userID int64) types.ReferralRecord {
	return l.records()[userKey(userID)]
}

// Attach registers that userID redeemed referrerID's code. The first
// registration wins: a user's referrer is immutable once set, and a
// user can never refer themselves. The referrer's record is created on
// demand.
func (l *ReferralLedger) Attach(userID, referrerID int64) error {
	if userID == referrerID {
		return ErrSelfReferral
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	recs := l.records()
	uKey := userKey(userID)
	rKey := userKey(referrerID)

	user := recs[uKey]
	if user.ReferredBy != "" {
		return ErrAlreadyReferred
	}
	user.ReferredBy = rKey
	recs[uKey] = user

	referrer := recs[rKey]
	if !referrer.HasReferred(uKey) {
		referrer.Referred = append(referrer.Referred, uKey)
	}
	recs[rKey] = referrer

	return l.store.Save(store.SetReferrals, recs)
}

// SettleBonus credits the referrer of userID with the one-time bonus.
// Called whenever a user's entitlement is freshly activated, for any
// plan or duration. No-op when the user has no referrer or the pair was
// already rewarded, so calling it twice grants nothing extra.
func (l *ReferralLedger) SettleBonus(userID int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	recs := l.records()
	uKey := userKey(userID)

	user, ok := recs[uKey]
	if !ok || user.ReferredBy == "" {
		return nil
	}

	referrer := recs[user.ReferredBy]
	if referrer.BonusGrantedFor(uKey) {
		return nil
	}

	referrerID, err := strconv.ParseInt(user.ReferredBy, 10, 64)
	if err != nil {
		log.Warn().Str("referred_by", user.ReferredBy).Msg("malformed referrer id, skipping bonus")
		return nil
	}

	if err := l.premium.Grant(referrerID, BonusDays, types.PlanStandard); err != nil {
		return err
	}

	referrer.BonusGranted = append(referrer.BonusGranted, uKey)
	recs[user.ReferredBy] = referrer
	if err := l.store.Save(store.SetReferrals, recs); err != nil {
		return err
	}

	if l.notify != nil {
		l.notify(referrerID)
	}
	return nil
}
