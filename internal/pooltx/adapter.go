// Package pooltx is the thin, logging adapter layer between a storage
// backend and the core pool state machine: it loads the Pool and
// UserDeposit records a request needs, invokes the corresponding
// internal/pool operation, persists the results and bumps their TTLs,
// and logs the outcome. The core package itself stays silent, matching
// the way apply_amm.go never logs and the surrounding RPC layer does.
package pooltx

import (
	"context"
	"log/slog"

	"github.com/LeJamon/ammpool/internal/claimable"
	"github.com/LeJamon/ammpool/internal/pool"
	"github.com/LeJamon/ammpool/internal/storage"
	"github.com/LeJamon/ammpool/internal/token"
	"github.com/LeJamon/ammpool/internal/userdeposit"
)

var poolKey = []byte("pool")

func userKey(addr string) []byte {
	return append([]byte("user:"), addr...)
}

// Adapter wires a Store and a set of token collaborators to the pool
// engine, persisting every successful operation.
type Adapter struct {
	store  storage.Store
	tokens pool.Tokens
	claims *claimable.Balances
	log    *slog.Logger
}

// New returns an Adapter backed by store, talking to the given token
// collaborators, logging through logger (slog.Default() if nil).
func New(store storage.Store, tokens pool.Tokens, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{
		store:  store,
		tokens: tokens,
		claims: claimable.NewBalances(),
		log:    logger.With("component", "pool"),
	}
}

// InitPool seeds the storage backend with p, failing if one already
// exists.
func (a *Adapter) InitPool(ctx context.Context, p *pool.Pool) error {
	if _, err := a.store.Read(ctx, poolKey); err == nil {
		return pool.ErrPoolAlreadyInitialized
	}
	if err := a.store.Write(ctx, poolKey, p.Encode()); err != nil {
		return err
	}
	a.log.Info("pool initialized", "amplification", p.A)
	return nil
}

func (a *Adapter) loadPool(ctx context.Context) (*pool.Pool, error) {
	buf, err := a.store.Read(ctx, poolKey)
	if err != nil {
		if err == storage.ErrKeyNotFound {
			return nil, pool.ErrPoolNotFound
		}
		return nil, err
	}
	return pool.DecodePool(buf)
}

func (a *Adapter) savePool(ctx context.Context, p *pool.Pool) error {
	if err := a.store.Write(ctx, poolKey, p.Encode()); err != nil {
		return err
	}
	return a.store.BumpTTL(ctx, poolKey, storage.PoolTTL)
}

func (a *Adapter) loadUser(ctx context.Context, addr string) (*userdeposit.UserDeposit, error) {
	buf, err := a.store.Read(ctx, userKey(addr))
	if err != nil {
		if err == storage.ErrKeyNotFound {
			d := userdeposit.GetOrDefault()
			return &d, nil
		}
		return nil, err
	}
	d, err := userdeposit.Decode(buf)
	return &d, err
}

func (a *Adapter) saveUser(ctx context.Context, addr string, d *userdeposit.UserDeposit) error {
	key := userKey(addr)
	if err := a.store.Write(ctx, key, d.Encode()); err != nil {
		return err
	}
	return a.store.BumpTTL(ctx, key, storage.UserDepositTTL)
}

// Deposit loads the pool and sender's deposit record, applies
// pool.Deposit, persists both and logs the outcome.
func (a *Adapter) Deposit(ctx context.Context, sender token.Address, amountSP uint64) (pool.DepositResult, error) {
	p, err := a.loadPool(ctx)
	if err != nil {
		return pool.DepositResult{}, err
	}
	user, err := a.loadUser(ctx, sender.String())
	if err != nil {
		return pool.DepositResult{}, err
	}

	res, err := p.Deposit(ctx, a.tokens, sender, user, amountSP)
	if err != nil {
		a.log.Warn("deposit failed", "sender", sender.String(), "amount", amountSP, "err", err)
		return pool.DepositResult{}, err
	}

	if err := a.savePool(ctx, p); err != nil {
		return pool.DepositResult{}, err
	}
	if err := a.saveUser(ctx, sender.String(), user); err != nil {
		return pool.DepositResult{}, err
	}
	a.log.Info("deposit applied", "sender", sender.String(), "amount", amountSP, "lp_minted", res.LPMinted)
	return res, nil
}

// Withdraw loads the pool and sender's deposit record, applies
// pool.Withdraw, persists both and logs the outcome.
func (a *Adapter) Withdraw(ctx context.Context, sender token.Address, amountLP uint64) error {
	p, err := a.loadPool(ctx)
	if err != nil {
		return err
	}
	user, err := a.loadUser(ctx, sender.String())
	if err != nil {
		return err
	}

	if err := p.Withdraw(ctx, a.tokens, sender, user, amountLP); err != nil {
		a.log.Warn("withdraw failed", "sender", sender.String(), "amount", amountLP, "err", err)
		return err
	}

	if err := a.savePool(ctx, p); err != nil {
		return err
	}
	if err := a.saveUser(ctx, sender.String(), user); err != nil {
		return err
	}
	a.log.Info("withdraw applied", "sender", sender.String(), "amount", amountLP)
	return nil
}

// Swap loads the pool, applies pool.Swap, persists it and logs the
// outcome. Swaps never touch a user deposit record.
func (a *Adapter) Swap(ctx context.Context, sender, recipient token.Address, amountIn, receiveMin uint64, zeroFee, claimableOut bool, direction pool.Direction) (pool.SwapResult, error) {
	p, err := a.loadPool(ctx)
	if err != nil {
		return pool.SwapResult{}, err
	}

	res, err := p.Swap(ctx, a.tokens, sender, recipient, a.claims, amountIn, receiveMin, zeroFee, claimableOut, direction)
	if err != nil {
		a.log.Warn("swap failed", "sender", sender.String(), "amount_in", amountIn, "err", err)
		return pool.SwapResult{}, err
	}

	if err := a.savePool(ctx, p); err != nil {
		return pool.SwapResult{}, err
	}
	a.log.Info("swap applied", "sender", sender.String(), "amount_in", amountIn, "result", res.Result, "fee", res.Fee)
	return res, nil
}

// ClaimRewards loads sender's deposit record, claims whatever is
// pending against the current pool accumulator, persists the refreshed
// snapshot and logs the outcome.
func (a *Adapter) ClaimRewards(ctx context.Context, sender token.Address) (uint64, error) {
	p, err := a.loadPool(ctx)
	if err != nil {
		return 0, err
	}
	user, err := a.loadUser(ctx, sender.String())
	if err != nil {
		return 0, err
	}

	pending := p.ClaimRewards(user)
	if pending == 0 {
		return 0, nil
	}
	if err := a.saveUser(ctx, sender.String(), user); err != nil {
		return 0, err
	}
	a.log.Info("rewards claimed", "sender", sender.String(), "amount", pending)
	return pending, nil
}

// ClaimableBalance returns recipient's currently accumulated,
// undrained claimable balance.
func (a *Adapter) ClaimableBalance(recipient token.Address) uint64 {
	return a.claims.Balance(recipient.String())
}
