package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/seikyu/internal/crypto/domain"
	cryptoService "github.com/allisson/seikyu/internal/crypto/service"
	apperrors "github.com/allisson/seikyu/internal/errors"
	profileDomain "github.com/allisson/seikyu/internal/profile/domain"
	"github.com/allisson/seikyu/internal/storage"
)

var testFingerprint = cryptoDomain.Fingerprint{
	UserAgent:    "seikyu/test (linux; amd64; ci)",
	Locale:       "ja-JP",
	DisplayWidth: 1920,
}

type failingAdapter struct {
	storage.Adapter
	err error
}

func (f failingAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, f.err
}

func newTestRepository(
	adapter storage.Adapter,
	fingerprint cryptoDomain.Fingerprint,
	alg cryptoDomain.Algorithm,
) *ProfileRepository {
	return NewProfileRepository(
		adapter,
		cryptoService.NewKeyDerivationProvider(fingerprint),
		cryptoService.NewEnvelopeCipher(cryptoService.NewAEADManager(), alg),
	)
}

func sampleData() profileDomain.ProfileStorageData {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	return profileDomain.ProfileStorageData{
		Profiles: []profileDomain.IssuerProfile{{
			ID: "p1",
			PersonalInfo: profileDomain.PersonalInfo{
				Name:       "山田 太郎",
				PostalCode: "150-0001",
				Address:    "東京都渋谷区",
			},
			BankInfo: profileDomain.BankInfo{
				BankName:      "みずほ銀行",
				BranchName:    "渋谷支店",
				AccountType:   profileDomain.AccountTypeOrdinary,
				AccountNumber: "1234567",
				AccountHolder: "ヤマダ タロウ",
			},
			Meta: profileDomain.ProfileMeta{
				ProfileName: "本業",
				IsDefault:   true,
				CreatedAt:   now,
				UpdatedAt:   now,
			},
		}},
		Version: profileDomain.DataVersion,
	}
}

func TestEncryptedRepository_LoadNotFound(t *testing.T) {
	repo := newTestRepository(storage.OpenMemoryAdapter(), testFingerprint, cryptoDomain.AESGCM)

	result, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeNotFound, result.Outcome)
	assert.Nil(t, result.Value.Profiles)
	assert.NoError(t, result.Err)
	assert.False(t, result.Recovered())
}

func TestEncryptedRepository_SaveAndLoad(t *testing.T) {
	for _, alg := range []cryptoDomain.Algorithm{cryptoDomain.AESGCM, cryptoDomain.ChaCha20} {
		t.Run(string(alg), func(t *testing.T) {
			ctx := context.Background()
			adapter := storage.OpenMemoryAdapter()
			repo := newTestRepository(adapter, testFingerprint, alg)

			require.NoError(t, repo.Save(ctx, sampleData()))

			raw, err := adapter.Get(ctx, storage.KeyProfiles)
			require.NoError(t, err)
			var envelope cryptoDomain.Envelope
			require.NoError(t, json.Unmarshal(raw, &envelope))
			assert.NotEmpty(t, envelope.Ciphertext)
			assert.NotEmpty(t, envelope.Nonce)
			assert.Equal(t, alg, envelope.Algorithm)
			assert.NotContains(t, string(raw), "山田")

			result, err := repo.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, OutcomeDecrypted, result.Outcome)
			assert.NoError(t, result.Err)
			assert.Equal(t, sampleData(), result.Value)
		})
	}
}

func TestEncryptedRepository_PlaintextFallback(t *testing.T) {
	ctx := context.Background()
	adapter := storage.OpenMemoryAdapter()

	legacy, err := json.Marshal(sampleData())
	require.NoError(t, err)
	require.NoError(t, adapter.Set(ctx, storage.KeyProfiles, legacy))

	result, err := newTestRepository(adapter, testFingerprint, cryptoDomain.AESGCM).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, OutcomePlaintextFallback, result.Outcome)
	assert.ErrorIs(t, result.Err, cryptoDomain.ErrMalformedEnvelope)
	assert.Equal(t, sampleData(), result.Value)
	assert.True(t, result.Recovered())
}

func TestEncryptedRepository_KeyChanged(t *testing.T) {
	ctx := context.Background()
	adapter := storage.OpenMemoryAdapter()
	require.NoError(t, newTestRepository(adapter, testFingerprint, cryptoDomain.AESGCM).Save(ctx, sampleData()))

	other := testFingerprint
	other.DisplayWidth = 2560

	result, err := newTestRepository(adapter, other, cryptoDomain.AESGCM).Load(ctx)
	require.NoError(t, err)
	// The envelope itself is valid JSON, so the plaintext fallback decodes it into an
	// empty collection.
	assert.Equal(t, OutcomePlaintextFallback, result.Outcome)
	assert.ErrorIs(t, result.Err, cryptoDomain.ErrDecryptionFailed)
	assert.Empty(t, result.Value.Profiles)
}

func TestEncryptedRepository_RecoveredEmpty(t *testing.T) {
	ctx := context.Background()
	adapter := storage.OpenMemoryAdapter()
	require.NoError(t, adapter.Set(ctx, storage.KeyProfiles, []byte("garbage")))

	result, err := newTestRepository(adapter, testFingerprint, cryptoDomain.AESGCM).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, OutcomeRecoveredEmpty, result.Outcome)
	assert.ErrorIs(t, result.Err, cryptoDomain.ErrMalformedEnvelope)
	assert.ErrorIs(t, result.Err, apperrors.ErrUnsupportedFormat)
	assert.Empty(t, result.Value.Profiles)
}

func TestEncryptedRepository_DecryptedPayloadOfWrongShape(t *testing.T) {
	ctx := context.Background()
	adapter := storage.OpenMemoryAdapter()

	writer := NewEncryptedRepository[[]string](
		adapter,
		storage.KeyProfiles,
		cryptoService.NewKeyDerivationProvider(testFingerprint),
		cryptoService.NewEnvelopeCipher(cryptoService.NewAEADManager(), cryptoDomain.AESGCM),
	)
	require.NoError(t, writer.Save(ctx, []string{"not", "profiles"}))

	result, err := newTestRepository(adapter, testFingerprint, cryptoDomain.AESGCM).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, OutcomePlaintextFallback, result.Outcome)
	assert.ErrorIs(t, result.Err, apperrors.ErrUnsupportedFormat)
	assert.Empty(t, result.Value.Profiles)
}

func TestEncryptedRepository_StorageReadFailure(t *testing.T) {
	boom := apperrors.Wrap(apperrors.ErrStorage, "backend unavailable")
	repo := newTestRepository(failingAdapter{err: boom}, testFingerprint, cryptoDomain.AESGCM)

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrStorage)
}

func TestEncryptedRepository_SaveKeyDerivationFailure(t *testing.T) {
	adapter := storage.OpenMemoryAdapter()
	repo := newTestRepository(adapter, cryptoDomain.Fingerprint{}, cryptoDomain.AESGCM)

	err := repo.Save(context.Background(), sampleData())
	assert.ErrorIs(t, err, cryptoDomain.ErrKeyDerivationFailed)
	assert.True(t, errors.Is(err, apperrors.ErrCrypto))

	ok, err := adapter.Exists(context.Background(), storage.KeyProfiles)
	require.NoError(t, err)
	assert.False(t, ok)
}
