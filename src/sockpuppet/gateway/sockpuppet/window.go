package sockpuppet

import (
	"context"
	"time"

	"github.com/uber/vscode-sockpuppet-go/src/sockpuppet/entity"
	"go.lsp.dev/protocol"
)

var _messageMethods = map[protocol.MessageType]string{
	protocol.MessageTypeInfo:    MethodShowInformationMessage,
	protocol.MessageTypeWarning: MethodShowWarningMessage,
	protocol.MessageTypeError:   MethodShowErrorMessage,
}

type showMessageParams struct {
	Message string   `json:"message"`
	Items   []string `json:"items"`
}

type inputBoxOptions struct {
	Prompt      string `json:"prompt,omitempty"`
	PlaceHolder string `json:"placeHolder,omitempty"`
	Value       string `json:"value,omitempty"`
	Password    bool   `json:"password,omitempty"`
}

type showInputBoxParams struct {
	Options inputBoxOptions `json:"options"`
}

type quickPickOptions struct {
	PlaceHolder string `json:"placeHolder,omitempty"`
	CanPickMany bool   `json:"canPickMany"`
}

type showQuickPickParams struct {
	Items   []string         `json:"items"`
	Options quickPickOptions `json:"options"`
}

type createOutputChannelParams struct {
	Name string `json:"name"`
	Text string `json:"text"`
	Show bool   `json:"show"`
}

type setStatusBarMessageParams struct {
	Text string `json:"text"`
	// HideAfterTimeout is in milliseconds.
	HideAfterTimeout int64 `json:"hideAfterTimeout"`
}

type window struct {
	session *session
}

func (w *window) ShowInformationMessage(ctx context.Context, message string) error {
	return w.showMessage(ctx, protocol.MessageTypeInfo, message)
}

func (w *window) ShowWarningMessage(ctx context.Context, message string) error {
	return w.showMessage(ctx, protocol.MessageTypeWarning, message)
}

func (w *window) ShowErrorMessage(ctx context.Context, message string) error {
	return w.showMessage(ctx, protocol.MessageTypeError, message)
}

func (w *window) showMessage(ctx context.Context, level protocol.MessageType, message string) error {
	// The host answers with the clicked item, if any. No items are offered, so the answer is dropped.
	var ack interface{}
	return w.session.call(ctx, _messageMethods[level], &showMessageParams{
		Message: message,
		Items:   []string{},
	}, &ack)
}

func (w *window) ShowInputBox(ctx context.Context, options entity.InputBoxOptions) (string, bool, error) {
	var value *string
	err := w.session.call(ctx, MethodShowInputBox, &showInputBoxParams{
		Options: inputBoxOptions{
			Prompt:      options.Prompt,
			PlaceHolder: options.Placeholder,
			Value:       options.Value,
			Password:    options.Password,
		},
	}, &value)
	if err != nil || value == nil {
		return "", false, err
	}
	return *value, true, nil
}

func (w *window) ShowQuickPick(ctx context.Context, items []string, options entity.QuickPickOptions) (string, bool, error) {
	if items == nil {
		items = []string{}
	}

	var selected *string
	err := w.session.call(ctx, MethodShowQuickPick, &showQuickPickParams{
		Items: items,
		Options: quickPickOptions{
			PlaceHolder: options.Placeholder,
		},
	}, &selected)
	if err != nil || selected == nil {
		return "", false, err
	}
	return *selected, true, nil
}

func (w *window) CreateOutputChannel(ctx context.Context, channel entity.OutputChannel) error {
	var ack interface{}
	return w.session.call(ctx, MethodCreateOutputChannel, &createOutputChannelParams{
		Name: channel.Name,
		Text: channel.Text,
		Show: channel.Show,
	}, &ack)
}

func (w *window) SetStatusBarMessage(ctx context.Context, text string, timeout time.Duration) error {
	var ack interface{}
	return w.session.call(ctx, MethodSetStatusBarMessage, &setStatusBarMessageParams{
		Text:             text,
		HideAfterTimeout: timeout.Milliseconds(),
	}, &ack)
}
