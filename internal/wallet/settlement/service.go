package settlement

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	httpClient "github.com/pinkpay/offlinepay/internal/wallet/api"
	"github.com/pinkpay/offlinepay/internal/models"
	"github.com/pinkpay/offlinepay/internal/netx"
	"github.com/pinkpay/offlinepay/internal/transport"
	"github.com/pinkpay/offlinepay/internal/wallet/authz"
	"github.com/pinkpay/offlinepay/internal/wallet/vault"
	"github.com/pinkpay/offlinepay/pkg/api"
)

//go:generate moq -out transport_mock.go . Transport

// Transport is the slice of the proximity manager the coordinator needs:
// who is on the other end, the session key, and a way to ship a payload.
type Transport interface {
	PeerID() string
	SessionKey() ([]byte, error)
	SendPayload(ctx context.Context, payload *models.SecurePaymentPayload) error
}

// Session identifies the logged-in wallet owner for server calls.
type Session struct {
	UserID      string
	AccessToken string
}

// Result aggregates one reconcile pass. Individual transaction failures
// land in Failed; they never abort the batch.
type Result struct {
	Synced int
	Failed int
}

// Service orchestrates payments end to end: outbound sends, inbound
// accepts and batch reconciliation with the settlement server.
type Service struct {
	vault     vault.Vault
	authz     authz.Service
	transport Transport
	apiClient httpClient.ClientAPI
	prober    netx.Prober
	session   Session
	logger    *slog.Logger
}

// NewService creates the settlement coordinator.
func NewService(
	v vault.Vault,
	ledger authz.Service,
	tr Transport,
	apiClient httpClient.ClientAPI,
	prober netx.Prober,
	session Session,
	logger *slog.Logger,
) *Service {
	return &Service{
		vault:     v,
		authz:     ledger,
		transport: tr,
		apiClient: apiClient,
		prober:    prober,
		session:   session,
		logger:    logger,
	}
}

// Pay sends amount to the connected peer. Token balances and the local
// spendable balance are committed before the payload leaves the device;
// failures past that point leave the transaction pending for Reconcile
// instead of rolling back.
func (s *Service) Pay(ctx context.Context, peerID string, amount decimal.Decimal, currency string) (*models.OfflineTransaction, error) {
	if s.transport.PeerID() != peerID {
		return nil, fmt.Errorf("peer %s: %w", peerID, transport.ErrNotConnected)
	}
	sessionKey, err := s.transport.SessionKey()
	if err != nil {
		return nil, fmt.Errorf("transport not ready: %w", err)
	}

	decision, err := s.authz.CheckAuthorization(ctx, amount)
	if err != nil {
		return nil, fmt.Errorf("authorization check failed: %w", err)
	}
	if !decision.Authorized {
		return nil, fmt.Errorf("%w: need %s, have %s",
			authz.ErrInsufficientAuthorization, amount, decision.Available)
	}

	// Point of no return: token balances move now and stay moved even
	// if the send below fails.
	allocations, err := s.authz.Allocate(ctx, amount)
	if err != nil {
		return nil, fmt.Errorf("allocation failed: %w", err)
	}

	balance, err := s.vault.Balance(ctx)
	if err == nil {
		if err := s.vault.SetBalance(ctx, balance.Sub(amount)); err != nil {
			s.logger.Warn("Failed to apply optimistic debit", "error", err)
		}
	} else {
		s.logger.Warn("Failed to read balance for optimistic debit", "error", err)
	}

	identity, err := s.vault.DeviceIdentity(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load device identity: %w", err)
	}

	split := make([]models.TokenAllocation, 0, len(allocations))
	for _, alloc := range allocations {
		split = append(split, models.TokenAllocation{TokenID: alloc.TokenID, Amount: alloc.Amount})
	}

	txn := &models.OfflineTransaction{
		TokenID:            allocations[0].TokenID,
		SenderID:           s.session.UserID,
		RecipientID:        peerID,
		Amount:             amount,
		Currency:           currency,
		Direction:          models.DirectionOutgoing,
		DeviceID:           peerID,
		SettlementRequired: true,
		Allocations:        split,
		Description:        "Offline payment sent (pending settlement)",
	}
	if err := s.vault.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to persist transaction: %w", err)
	}

	message := models.PaymentMessage{
		TransactionID: txn.ID,
		TokenID:       txn.TokenID,
		SenderID:      s.session.UserID,
		RecipientID:   peerID,
		Currency:      currency,
		SenderDevice:  identity.PartialID(),
		Version:       models.PayloadVersion,
		Amount:        amount,
		Timestamp:     txn.Timestamp,
		Allocations:   split,
	}

	payload, err := s.vault.EncryptForTransfer(ctx, message, sessionKey)
	if err != nil {
		return txn, fmt.Errorf("failed to encrypt payment: %w", err)
	}
	if err := s.transport.SendPayload(ctx, payload); err != nil {
		return txn, fmt.Errorf("failed to send payment: %w", err)
	}

	s.logger.Info("Payment sent",
		"transaction_id", txn.ID,
		"peer_id", peerID,
		"amount", amount,
		"tokens_used", len(allocations))

	return txn, nil
}

// HandlePayload processes one inbound payment payload. Decryption
// failures are hard rejects. When online the sender's token is verified
// with the server and settlement is attempted immediately; when offline
// the payment is accepted conditionally and settled at the next
// Reconcile.
func (s *Service) HandlePayload(ctx context.Context, peerID string, payload *models.SecurePaymentPayload) (*models.OfflineTransaction, error) {
	sessionKey, err := s.transport.SessionKey()
	if err != nil {
		return nil, fmt.Errorf("transport not ready: %w", err)
	}

	plaintext, err := s.vault.DecryptFromTransfer(ctx, payload, sessionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt payment: %w", err)
	}

	var message models.PaymentMessage
	if err := json.Unmarshal(plaintext, &message); err != nil {
		return nil, fmt.Errorf("failed to decode payment message: %w", err)
	}

	online := s.prober.IsOnline(ctx)
	if online {
		// verify each token against its own share, not the total: a
		// payment split across tokens is valid even though no single
		// token covers the full amount
		checks := message.Allocations
		if len(checks) == 0 {
			checks = []models.TokenAllocation{{TokenID: message.TokenID, Amount: message.Amount}}
		}
		for _, alloc := range checks {
			resp, err := s.apiClient.VerifyToken(ctx, s.session.AccessToken, api.VerifyTokenRequest{
				TokenID:        alloc.TokenID,
				SenderID:       message.SenderID,
				Amount:         alloc.Amount,
				Currency:       message.Currency,
				SenderDeviceID: message.SenderDevice,
			})
			if err != nil {
				// verification unavailable counts as offline: accept
				// conditionally rather than drop the payment
				s.logger.Warn("Token verification unreachable, accepting conditionally", "error", err)
				online = false
				break
			}
			if !resp.Verification.CanProceed {
				txn, rejErr := s.Reject(ctx, &message, "server verification refused the token")
				if rejErr != nil {
					return nil, rejErr
				}
				return txn, fmt.Errorf("%w: server verification refused token %s", ErrPaymentRejected, alloc.TokenID)
			}
		}
	}

	txn := &models.OfflineTransaction{
		TokenID:            message.TokenID,
		SenderID:           message.SenderID,
		RecipientID:        s.session.UserID,
		Amount:             message.Amount,
		Currency:           message.Currency,
		Direction:          models.DirectionIncoming,
		DeviceID:           message.SenderDevice,
		SettlementRequired: true,
		Allocations:        message.Allocations,
		Description:        "Offline payment received (pending settlement)",
	}
	if err := s.vault.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to persist transaction: %w", err)
	}

	if !online {
		if err := s.vault.UpdateTransactionStatus(ctx, txn.ID, models.SyncStatusOffline); err != nil {
			s.logger.Warn("Failed to mark transaction offline", "transaction_id", txn.ID, "error", err)
		} else {
			txn.SyncStatus = models.SyncStatusOffline
		}
		s.logger.Info("Payment accepted offline",
			"transaction_id", txn.ID, "peer_id", peerID, "amount", message.Amount)
		return txn, nil
	}

	// online: settle right away; a failure leaves the transaction
	// pending for the next reconcile
	if err := s.settleIncoming(ctx, txn); err != nil {
		s.logger.Warn("Immediate settlement failed, will retry on reconcile",
			"transaction_id", txn.ID, "error", err)
		return txn, nil
	}
	txn.SyncStatus = models.SyncStatusSynced

	s.logger.Info("Payment accepted and settled",
		"transaction_id", txn.ID, "peer_id", peerID, "amount", message.Amount)
	return txn, nil
}

// Reject persists a rejected inbound payment with its reason. No
// balance action is taken.
func (s *Service) Reject(ctx context.Context, message *models.PaymentMessage, reason string) (*models.OfflineTransaction, error) {
	txn := &models.OfflineTransaction{
		TokenID:         message.TokenID,
		SenderID:        message.SenderID,
		RecipientID:     s.session.UserID,
		Amount:          message.Amount,
		Currency:        message.Currency,
		Direction:       models.DirectionIncoming,
		DeviceID:        message.SenderDevice,
		RejectionReason: reason,
		Description:     "Offline payment rejected",
	}
	if err := s.vault.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to persist rejection: %w", err)
	}
	if err := s.vault.UpdateTransactionStatus(ctx, txn.ID, models.SyncStatusRejected); err != nil {
		return nil, fmt.Errorf("failed to mark transaction rejected: %w", err)
	}
	txn.SyncStatus = models.SyncStatusRejected

	s.logger.Info("Payment rejected", "transaction_id", txn.ID, "reason", reason)
	return txn, nil
}

// Reconcile settles every pending and offline transaction with the
// server. Per-transaction failures are counted, never fatal; a synced
// transaction is left alone, so running Reconcile twice in a row does
// no extra work and applies no balance change twice.
func (s *Service) Reconcile(ctx context.Context) (*Result, error) {
	if !s.prober.IsOnline(ctx) {
		return nil, fmt.Errorf("cannot reconcile: %w", ErrNotOnline)
	}

	transactions, err := s.vault.GetTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	result := &Result{}
	for _, txn := range transactions {
		if !txn.SyncStatus.NeedsSettlement() {
			continue
		}

		var settleErr error
		switch txn.Direction {
		case models.DirectionOutgoing:
			settleErr = s.settleOutgoing(ctx, txn)
		case models.DirectionIncoming:
			settleErr = s.settleIncoming(ctx, txn)
		}

		if settleErr != nil {
			s.logger.Warn("Settlement attempt failed",
				"transaction_id", txn.ID,
				"direction", txn.Direction,
				"error", settleErr)
			result.Failed++
			continue
		}
		result.Synced++
	}

	s.logger.Info("Reconcile finished", "synced", result.Synced, "failed", result.Failed)
	return result, nil
}

// settleOutgoing reports a sent payment to the server. The local
// balance was already debited at Pay time; nothing is re-applied here.
func (s *Service) settleOutgoing(ctx context.Context, txn *models.OfflineTransaction) error {
	resp, err := s.apiClient.Settle(ctx, s.session.AccessToken, s.settleRequest(txn))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSettlementFailure, err)
	}
	if !resp.Success {
		return fmt.Errorf("%w: %s", ErrSettlementFailure, resp.Message)
	}

	if err := s.vault.UpdateTransactionStatus(ctx, txn.ID, models.SyncStatusSynced); err != nil {
		return fmt.Errorf("failed to mark transaction synced: %w", err)
	}

	// reconcile against the authoritative balance when the server
	// reports one
	if resp.BalanceUpdates != nil {
		if err := s.vault.SetBalance(ctx, resp.BalanceUpdates.SenderBalance); err != nil {
			s.logger.Warn("Failed to store reconciled balance", "error", err)
		}
	}
	return nil
}

// settleIncoming reports a received payment through the received-sync
// endpoint and credits the local balance exactly once, together with
// the synced status flip.
func (s *Service) settleIncoming(ctx context.Context, txn *models.OfflineTransaction) error {
	resp, err := s.apiClient.SyncReceived(ctx, s.session.AccessToken, api.SyncReceivedRequest{
		RecipientID:  s.session.UserID,
		DeviceID:     txn.DeviceID,
		Transactions: []api.SettleRequest{s.settleRequest(txn)},
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSettlementFailure, err)
	}

	credited := false
	for _, id := range resp.Synced {
		if id == txn.ID {
			credited = true
			break
		}
	}
	if !credited {
		return fmt.Errorf("%w: server refused credit for %s", ErrSettlementFailure, txn.ID)
	}

	if err := s.vault.UpdateTransactionStatus(ctx, txn.ID, models.SyncStatusSynced); err != nil {
		return fmt.Errorf("failed to mark transaction synced: %w", err)
	}
	if err := s.vault.SetBalance(ctx, resp.Balance); err != nil {
		return fmt.Errorf("failed to store credited balance: %w", err)
	}
	return nil
}

func (s *Service) settleRequest(txn *models.OfflineTransaction) api.SettleRequest {
	allocations := make([]api.TokenAllocation, 0, len(txn.Allocations))
	for _, alloc := range txn.Allocations {
		allocations = append(allocations, api.TokenAllocation{TokenID: alloc.TokenID, Amount: alloc.Amount})
	}
	return api.SettleRequest{
		TransactionID: txn.ID,
		TokenID:       txn.TokenID,
		SenderID:      txn.SenderID,
		RecipientID:   txn.RecipientID,
		Amount:        txn.Amount,
		Currency:      txn.Currency,
		Direction:     string(txn.Direction),
		DeviceID:      txn.DeviceID,
		Timestamp:     txn.Timestamp,
		Allocations:   allocations,
	}
}
