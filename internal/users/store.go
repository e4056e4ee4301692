package users

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/temirov/users-app/internal/messages"
)

const (
	usersDataHeaderMessageConstant    = "Users data"
	noDataMessageConstant             = "No data..."
	userAddedMessageConstant          = "User has been successfully added!"
	userDeletedMessageConstant        = "User deleted!"
	userUpdatedMessageConstant        = "User updated!"
	wrongDataMessageConstant          = "Wrong data!"
	userNotFoundMessageConstant       = "User not found..."
	invalidUserErrorTemplateConstant  = "%w: name=%q age=%d"
	userNotFoundErrorTemplateConstant = "%w: %q"
	notificationFailedLogMessage      = "notification failed"
	storeOperationLogMessageConstant  = "user store operation"
	logFieldOperationConstant         = "operation"
	logFieldNameConstant              = "name"
	logFieldAgeConstant               = "age"
	logFieldIndexConstant             = "index"
	logFieldSizeConstant              = "size"
	operationAddConstant              = "add"
	operationRemoveConstant           = "remove"
	operationEditConstant             = "edit"
	tableIndexHeaderConstant          = "(index)"
	tableNameHeaderConstant           = "name"
	tableAgeHeaderConstant            = "age"
	tableRowTemplateConstant          = "%s\t%s\t%s\n"
	tableMinimumWidthConstant         = 0
	tableTabWidthConstant             = 8
	tablePaddingConstant              = 2
	tablePaddingCharacterConstant     = ' '
	notFoundIndexConstant             = -1
)

// Notifier reports operation outcomes to the operator.
type Notifier interface {
	Emit(severity messages.Severity, content string) error
}

// Store is an ordered, in-memory collection of User records owned by a single control flow.
type Store struct {
	records  []User
	notifier Notifier
	output   io.Writer
	logger   *zap.Logger
}

// NewStore constructs an empty store. Listings are written to output (standard output when nil).
func NewStore(notifier Notifier, output io.Writer, logger *zap.Logger) *Store {
	if output == nil {
		output = os.Stdout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{notifier: notifier, output: output, logger: logger}
}

// Users returns a copy of the records in insertion order.
func (store *Store) Users() []User {
	duplicatedRecords := make([]User, len(store.records))
	copy(duplicatedRecords, store.records)
	return duplicatedRecords
}

// Len returns the number of stored records.
func (store *Store) Len() int {
	return len(store.records)
}

// ShowAll prints the header notification followed by either a no-data notice or a table of all records.
func (store *Store) ShowAll() error {
	store.notify(messages.SeverityInfo, usersDataHeaderMessageConstant)

	if len(store.records) == 0 {
		return messages.NewMessage(store.output, noDataMessageConstant).Show()
	}

	return store.renderTable()
}

// Add appends candidate when it satisfies the record invariant.
func (store *Store) Add(candidate User) error {
	if !candidate.Valid() {
		store.notify(messages.SeverityError, wrongDataMessageConstant)
		return fmt.Errorf(invalidUserErrorTemplateConstant, ErrInvalidUserData, candidate.Name, candidate.Age)
	}

	store.records = append(store.records, candidate)
	store.logOperation(operationAddConstant, candidate, len(store.records)-1)
	store.notify(messages.SeveritySuccess, userAddedMessageConstant)
	return nil
}

// Remove deletes the first record whose name equals name exactly.
func (store *Store) Remove(name string) error {
	recordIndex := store.indexOf(name)
	if recordIndex == notFoundIndexConstant {
		store.notify(messages.SeverityError, userNotFoundMessageConstant)
		return fmt.Errorf(userNotFoundErrorTemplateConstant, ErrUserNotFound, name)
	}

	removedRecord := store.records[recordIndex]
	store.records = append(store.records[:recordIndex], store.records[recordIndex+1:]...)
	store.logOperation(operationRemoveConstant, removedRecord, recordIndex)
	store.notify(messages.SeveritySuccess, userDeletedMessageConstant)
	return nil
}

// Edit overwrites the first record named targetName with replacement, keeping its position.
// The lookup happens before replacement is validated.
func (store *Store) Edit(targetName string, replacement User) error {
	recordIndex := store.indexOf(targetName)
	if recordIndex == notFoundIndexConstant {
		store.notify(messages.SeverityError, userNotFoundMessageConstant)
		return fmt.Errorf(userNotFoundErrorTemplateConstant, ErrUserNotFound, targetName)
	}

	if !replacement.Valid() {
		store.notify(messages.SeverityError, wrongDataMessageConstant)
		return fmt.Errorf(invalidUserErrorTemplateConstant, ErrInvalidUserData, replacement.Name, replacement.Age)
	}

	store.records[recordIndex].Name = replacement.Name
	store.records[recordIndex].Age = replacement.Age
	store.logOperation(operationEditConstant, replacement, recordIndex)
	store.notify(messages.SeveritySuccess, userUpdatedMessageConstant)
	return nil
}

func (store *Store) indexOf(name string) int {
	for recordIndex, record := range store.records {
		if record.Name == name {
			return recordIndex
		}
	}
	return notFoundIndexConstant
}

func (store *Store) renderTable() error {
	tableWriter := tabwriter.NewWriter(store.output, tableMinimumWidthConstant, tableTabWidthConstant, tablePaddingConstant, tablePaddingCharacterConstant, 0)
	if _, writeError := fmt.Fprintf(tableWriter, tableRowTemplateConstant, tableIndexHeaderConstant, tableNameHeaderConstant, tableAgeHeaderConstant); writeError != nil {
		return writeError
	}
	for recordIndex, record := range store.records {
		if _, writeError := fmt.Fprintf(tableWriter, tableRowTemplateConstant, strconv.Itoa(recordIndex), record.Name, strconv.Itoa(record.Age)); writeError != nil {
			return writeError
		}
	}
	return tableWriter.Flush()
}

func (store *Store) notify(severity messages.Severity, content string) {
	if store.notifier == nil {
		return
	}
	if emitError := store.notifier.Emit(severity, content); emitError != nil {
		store.logger.Warn(notificationFailedLogMessage, zap.Error(emitError))
	}
}

func (store *Store) logOperation(operation string, record User, recordIndex int) {
	store.logger.Debug(
		storeOperationLogMessageConstant,
		zap.String(logFieldOperationConstant, operation),
		zap.String(logFieldNameConstant, record.Name),
		zap.Int(logFieldAgeConstant, record.Age),
		zap.Int(logFieldIndexConstant, recordIndex),
		zap.Int(logFieldSizeConstant, len(store.records)),
	)
}
