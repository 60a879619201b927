package memory

import "context"

type txKey struct{}

// TransactionManager реализует управление транзакциями поверх Storage.
// Транзакции выполняются строго по одной; вложенные вызовы переиспользуют текущую.
type TransactionManager struct {
	storage *Storage
}

// NewTransactionManager создает новый менеджер транзакций
func NewTransactionManager(storage *Storage) *TransactionManager {
	return &TransactionManager{storage: storage}
}

// RunInTransaction выполняет функцию в транзакции
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	// Если транзакция уже существует в контексте, используем её
	if inTx(ctx) {
		return fn(ctx)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	tm.storage.txMu.Lock()
	defer tm.storage.txMu.Unlock()

	return fn(context.WithValue(ctx, txKey{}, struct{}{}))
}

// inTx сообщает, выполняется ли код внутри транзакции
func inTx(ctx context.Context) bool {
	return ctx.Value(txKey{}) != nil
}
