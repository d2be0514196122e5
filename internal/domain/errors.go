package domain

import "errors"

// Erros de domínio (sem dependências externas).
//
// Taxonomia: ErrInvalidInput para validação de campos; ErrPrecondition para
// regras de negócio não cumpridas (operação abortada, sem mutação parcial);
// ErrNotFound para referências que já não resolvem; ErrConflict e
// ErrAlreadyReceived para operações repetidas sobre estado final.
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUserNotFound       = errors.New("utilizador não encontrado")
	ErrEmailAlreadyExists = errors.New("o email já está registado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso negado")
	ErrConflict           = errors.New("conflito com o estado atual")
	ErrPrecondition       = errors.New("pré-condição de negócio não cumprida")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrNoInterest         = errors.New("o cliente não manifestou interesse formal neste produto via ofício")
	ErrNotDelivered       = errors.New("o equipamento ainda não foi entregue")
	ErrNoSpecialCredit    = errors.New("o cliente não tem crédito especial para pagamento em prestações")
	ErrAlreadyReceived    = errors.New("a encomenda já foi recebida")
	ErrInvalidTransition  = errors.New("transição de estado não permitida")
)
