package email

import (
	"jobportal_backend/internal/logger"
)

// Provider определяет интерфейс для доставки писем.
// Для ядра это внешний нотификатор: reset-токен передается сюда
// и больше никуда не отдается
type Provider interface {
	// Send отправляет простое email сообщение
	Send(email *Email) error

	// SendPasswordReset отправляет письмо со ссылкой сброса пароля
	SendPasswordReset(to string, token string) error

	// Validate проверяет конфигурацию провайдера
	Validate() error

	// Close закрывает соединение с провайдером
	Close() error
}

// LogProvider - заглушка, которая пишет письма в лог.
// Используется, когда SMTP не сконфигурирован (dev-режим и тесты)
type LogProvider struct{}

func NewLogProvider() *LogProvider {
	return &LogProvider{}
}

func (p *LogProvider) Send(email *Email) error {
	logger.Info("Email (log provider)",
		"to", email.To,
		"subject", email.Subject,
	)
	return nil
}

func (p *LogProvider) SendPasswordReset(to string, token string) error {
	// Сам токен в лог не пишем
	logger.Info("Password reset email (log provider)", "to", to)
	return nil
}

func (p *LogProvider) Validate() error { return nil }

func (p *LogProvider) Close() error { return nil }
