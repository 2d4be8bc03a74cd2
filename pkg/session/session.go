// Package session хранит состояние диалога по chatID. Хранилище живёт
// только в памяти: спецификация сервиса не предполагает ни базы, ни
// файлов — заказ существует ровно один диалог.
package session

import "github.com/EBWTBME/reshu-bot/pkg/order"

// State — шаг диалога оформления заказа.
type State int

const (
	StateTypeChoice State = iota
	StateSendMaterial
	StateExplainChoice
	StateDeadlineChoice
	StateExtraParams
	StateConfirm
	StatePayment
	StateWaitingReceipt
)

// Session — диалог одного чата: текущий шаг и собираемый заказ.
type Session struct {
	ChatID int64
	State  State
	Order  *order.Order
}

// Store — сессии по chatID. Доступ не синхронизирован: цикл обработки
// апдейтов однопоточный, события одного чата приходят строго по очереди.
type Store struct {
	sessions map[int64]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[int64]*Session)}
}

// Start заводит новую сессию, затирая прежнюю, если была.
func (s *Store) Start(chatID int64) *Session {
	sess := &Session{
		ChatID: chatID,
		State:  StateTypeChoice,
		Order:  order.New(),
	}
	s.sessions[chatID] = sess
	return sess
}

// Get возвращает активную сессию чата или nil.
func (s *Store) Get(chatID int64) *Session {
	return s.sessions[chatID]
}

// Delete удаляет сессию вместе с заказом — и при отмене, и при завершении.
func (s *Store) Delete(chatID int64) {
	delete(s.sessions, chatID)
}
