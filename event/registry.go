package event

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

var (
	nameToType    = make(map[string]CommandType)
	typeToName    = make(map[CommandType]string)
	typeToPayload = make(map[CommandType]reflect.Type)
)

// registerType maps a string name to a CommandType and its payload struct type
// payloadInstance should be a pointer to the payload struct (e.g., &AddBodyPayload{})
// Pass nil if the command has no payload
func registerType(name string, ct CommandType, payloadInstance any) {
	nameToType[strings.ToLower(name)] = ct
	typeToName[ct] = name
	if payloadInstance != nil {
		t := reflect.TypeOf(payloadInstance)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		typeToPayload[ct] = t
	}
}

func init() {
	registerType("AddBody", CmdAddBody, &AddBodyPayload{})
	registerType("RemoveBody", CmdRemoveBody, &BodyRefPayload{})
	registerType("AddBlackHole", CmdAddBlackHole, &PointPayload{})
	registerType("ToggleBlackHoleAt", CmdToggleBlackHoleAt, &PointPayload{})
	registerType("SetBlackHoleMass", CmdSetBlackHoleMass, &ValuePayload{})

	registerType("SetGravity", CmdSetGravity, &ValuePayload{})
	registerType("SetInvertGravity", CmdSetInvertGravity, &TogglePayload{})
	registerType("SetMergeMode", CmdSetMergeMode, &TogglePayload{})
	registerType("SetRepelMode", CmdSetRepelMode, &TogglePayload{})
	registerType("SetBoundsMode", CmdSetBoundsMode, &BoundsModePayload{})
	registerType("CycleBoundsMode", CmdCycleBoundsMode, nil)
	registerType("SetZoomBounds", CmdSetZoomBounds, &TogglePayload{})
	registerType("SetTrailLength", CmdSetTrailLength, &CountPayload{})
	registerType("SetTimeScale", CmdSetTimeScale, &ValuePayload{})
	registerType("SetRestitution", CmdSetRestitution, &ValuePayload{})
	registerType("SetRepelStrength", CmdSetRepelStrength, &ValuePayload{})
	registerType("SetSoftening", CmdSetSoftening, &ValuePayload{})
	registerType("SetForceMethod", CmdSetForceMethod, &ForceMethodPayload{})
	registerType("SetTheta", CmdSetTheta, &ValuePayload{})
	registerType("SetTrackingRate", CmdSetTrackingRate, &ValuePayload{})

	registerType("SetPaused", CmdSetPaused, &TogglePayload{})
	registerType("TogglePause", CmdTogglePause, nil)
	registerType("Reset", CmdReset, nil)

	registerType("Pan", CmdPan, &PanPayload{})
	registerType("Zoom", CmdZoom, &ZoomPayload{})
	registerType("ResetView", CmdResetView, nil)
	registerType("Resize", CmdResize, &ResizePayload{})
	registerType("TrackBody", CmdTrackBody, &BodyRefPayload{})

	registerType("SpawnOrbit", CmdSpawnOrbit, &SpawnOrbitPayload{})
	registerType("OrbitAction", CmdOrbitAction, &OrbitActionPayload{})
}

// LookupType returns the CommandType for a case-insensitive name
func LookupType(name string) (CommandType, bool) {
	ct, ok := nameToType[strings.ToLower(name)]
	return ct, ok
}

// NewPayloadStruct returns a new pointer to a zero-value payload struct for the command type
// Returns nil if no payload is registered
func NewPayloadStruct(ct CommandType) any {
	t, ok := typeToPayload[ct]
	if !ok {
		return nil
	}
	return reflect.New(t).Interface()
}

// remoteBlocked lists commands that carry in-process values and cannot arrive over the wire
var remoteBlocked = map[CommandType]bool{
	CmdSpawnOrbit: true,
}

// Decode builds a Command from a wire name and raw JSON payload
func Decode(name string, raw json.RawMessage) (Command, error) {
	ct, ok := LookupType(name)
	if !ok {
		return Command{}, fmt.Errorf("unknown command %q", name)
	}
	if remoteBlocked[ct] {
		return Command{}, fmt.Errorf("command %s not accepted remotely", typeToName[ct])
	}

	payload := NewPayloadStruct(ct)
	if payload == nil {
		return Command{Type: ct}, nil
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, payload); err != nil {
			return Command{}, fmt.Errorf("decode %s payload: %w", typeToName[ct], err)
		}
	}
	return Command{Type: ct, Payload: payload}, nil
}
