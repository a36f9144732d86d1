package blockscan_test

import "github.com/gabapcia/taowatch/internal/blockscan"

func idx(i int) *int {
	return &i
}

func call(index int, module, function string, args ...blockscan.CallArg) blockscan.Extrinsic {
	return blockscan.Extrinsic{Index: index, Module: module, Function: function, Args: args}
}

func event(id string, extrinsicIdx *int, attrs map[string]any) blockscan.Event {
	return blockscan.Event{ID: id, ExtrinsicIdx: extrinsicIdx, Attributes: attrs}
}

func success(i int) blockscan.Event {
	return event(blockscan.EventExtrinsicSuccess, idx(i), nil)
}

func failure(i int) blockscan.Event {
	return event(blockscan.EventExtrinsicFailed, idx(i), nil)
}
