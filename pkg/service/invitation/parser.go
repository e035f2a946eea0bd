package invitation

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/partner-agent/invitecheck/pkg/domain/model"
	"github.com/partner-agent/invitecheck/pkg/domain/types"
)

const (
	MsgInvitationEmpty         = "Invitation was empty"
	MsgInvitationDecodedEmpty  = "Invitation could not be decoded; result was empty"
	MsgOutOfBandNotSupported   = "Out of band Invitations are currently not supported"
	msgInvitationDecodeFailure = "Invitation could not be decoded: %s"
	msgInvitationParseFailure  = "Error parsing invitation %s"
	msgUnknownInvitationType   = "Unknown or unsupported Invitation type. @type = '%s'"
	msgMissingInvitationType   = "Unknown or unsupported Invitation type. @type is missing"
)

var (
	errNotHTTPURL   = goerr.New("URL must be an absolute http or https URL")
	errNullDocument = goerr.New("top-level value is null, expected an object")
	errTrailingData = goerr.New("unexpected data after top-level object")
)

// requestKeys are the exact document keys ReceiveInvitationRequest reads
var requestKeys = jsonKeys(reflect.TypeOf(model.ReceiveInvitationRequest{}))

// ParseInvitation decodes and classifies an invitation block. It never fails:
// every problem is reported through the Error field of the result.
func ParseInvitation(ctx context.Context, block string) *model.Invitation {
	inv := &model.Invitation{
		Kind: model.KindUnknown,
	}
	if block == "" {
		return reject(ctx, inv, types.CheckStageEmpty, MsgInvitationEmpty)
	}
	inv.InvitationBlock = block

	decoded, err := DecodeBlock(block)
	if err != nil {
		return reject(ctx, inv, types.CheckStageDecode, fmt.Sprintf(msgInvitationDecodeFailure, err.Error()))
	}
	if len(decoded) == 0 {
		return reject(ctx, inv, types.CheckStageDecode, MsgInvitationDecodedEmpty)
	}

	doc, err := parseDocument(decoded)
	if err != nil {
		return reject(ctx, inv, types.CheckStageParse, fmt.Sprintf(msgInvitationParseFailure, err.Error()))
	}
	inv.Invitation = doc
	inv.Parsed = true

	typeValue, hasType := inv.TypeValue()
	inv.Kind = model.ClassifyInvitationType(typeValue)

	switch inv.Kind {
	case model.KindConnection:
		req, err := decodeRequest(doc)
		if err != nil {
			return reject(ctx, inv, types.CheckStageParse, fmt.Sprintf(msgInvitationParseFailure, err.Error()))
		}
		inv.InvitationRequest = req
		inv.Stage = types.CheckStageAccepted

	case model.KindOutOfBand:
		inv.OOB = true
		return reject(ctx, inv, types.CheckStageOutOfBand, MsgOutOfBandNotSupported)

	case model.KindUnknown:
		if !hasType {
			return reject(ctx, inv, types.CheckStageUnknown, msgMissingInvitationType)
		}
		return reject(ctx, inv, types.CheckStageUnknown, fmt.Sprintf(msgUnknownInvitationType, formatTypeValue(typeValue)))

	default:
		return reject(ctx, inv, types.CheckStageUnknown, fmt.Sprintf("unhandled invitation kind %d", inv.Kind))
	}

	return inv
}

// DecodeBlock decodes a standard-alphabet base64 block. Padding is optional,
// and spaces are read as '+' since query decoding turns '+' into a space.
func DecodeBlock(block string) ([]byte, error) {
	normalized := strings.ReplaceAll(block, " ", "+")
	normalized = strings.TrimRight(normalized, "=")

	decoded, err := base64.RawStdEncoding.DecodeString(normalized)
	if err != nil {
		return nil, goerr.Wrap(err, "illegal base64 invitation block", goerr.V("length", len(block)))
	}
	return decoded, nil
}

func parseDocument(decoded []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(decoded))
	dec.UseNumber()

	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errNullDocument
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errTrailingData
	}
	return doc, nil
}

// decodeRequest fills the request from the exact keys of doc. Struct decoding
// alone would also accept "Label" or "LABEL" for "label".
func decodeRequest(doc map[string]any) (*model.ReceiveInvitationRequest, error) {
	exact := make(map[string]any, len(requestKeys))
	for _, key := range requestKeys {
		if v, ok := doc[key]; ok {
			exact[key] = v
		}
	}

	raw, err := json.Marshal(exact)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode invitation fields")
	}

	var req model.ReceiveInvitationRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

func jsonKeys(t reflect.Type) []string {
	var keys []string
	for i := range t.NumField() {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name != "" && name != "-" {
			keys = append(keys, name)
		}
	}
	return keys
}

// formatTypeValue renders a non-string @type as JSON, so null reads "null"
func formatTypeValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(raw)
}

func reject(ctx context.Context, inv *model.Invitation, stage types.CheckStage, msg string) *model.Invitation {
	inv.Stage = stage
	inv.Error = msg
	ctxlog.From(ctx).Error(msg,
		"stage", stage,
		"kind", inv.Kind.String(),
		"parsed", inv.Parsed,
	)
	return inv
}
