package document

// Get returns the value at path. It fails with *NotFoundError when any
// segment does not exist or addresses a value of the wrong container kind.
func Get(doc any, path Path) (any, error) {
	cur := doc
	for i, seg := range path {
		if seg.isIndex {
			arr, ok := cur.([]any)
			if !ok || seg.index < 0 || seg.index >= len(arr) {
				return nil, &NotFoundError{Path: path[:i+1].String()}
			}
			cur = arr[seg.index]
			continue
		}
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, &NotFoundError{Path: path[:i+1].String()}
		}
		v, exists := obj[seg.key]
		if !exists {
			return nil, &NotFoundError{Path: path[:i+1].String()}
		}
		cur = v
	}
	return cur, nil
}

// Set returns a new document with the value at path replaced. Every
// container along the path is copied, so the input document is never
// mutated and holds no aliases into the result. Addressing follows Get,
// with one exception: setting an array index equal to the array's current
// length appends.
func Set(doc any, path Path, value any) (any, error) {
	return setValue(doc, path, 0, value)
}

func setValue(node any, path Path, depth int, value any) (any, error) {
	if depth == len(path) {
		return value, nil
	}
	seg := path[depth]

	if seg.isIndex {
		arr, ok := node.([]any)
		if !ok || seg.index < 0 || seg.index > len(arr) {
			return nil, &NotFoundError{Path: path[:depth+1].String()}
		}
		if seg.index == len(arr) {
			// Append only as the final step; there is nothing to descend into.
			if depth != len(path)-1 {
				return nil, &NotFoundError{Path: path[:depth+1].String()}
			}
			out := make([]any, len(arr)+1)
			copy(out, arr)
			out[len(arr)] = value
			return out, nil
		}
		child, err := setValue(arr[seg.index], path, depth+1, value)
		if err != nil {
			return nil, err
		}
		out := make([]any, len(arr))
		copy(out, arr)
		out[seg.index] = child
		return out, nil
	}

	obj, ok := node.(map[string]any)
	if !ok {
		return nil, &NotFoundError{Path: path[:depth+1].String()}
	}
	existing, exists := obj[seg.key]
	if !exists {
		return nil, &NotFoundError{Path: path[:depth+1].String()}
	}
	child, err := setValue(existing, path, depth+1, value)
	if err != nil {
		return nil, err
	}
	out := make(map[string]any, len(obj))
	for k, v := range obj {
		out[k] = v
	}
	out[seg.key] = child
	return out, nil
}

// InsertAt returns a new document with template inserted into the sequence
// at sectionPath at position index. An index beyond the current length
// appends; a negative index fails with *OutOfRangeError.
func InsertAt(doc any, sectionPath Path, index int, template any) (any, error) {
	arr, err := sectionAt(doc, sectionPath)
	if err != nil {
		return nil, err
	}
	if index < 0 {
		return nil, &OutOfRangeError{Path: sectionPath.String(), Index: index, Length: len(arr)}
	}
	if index > len(arr) {
		index = len(arr)
	}
	out := make([]any, 0, len(arr)+1)
	out = append(out, arr[:index]...)
	out = append(out, template)
	out = append(out, arr[index:]...)
	return replaceSection(doc, sectionPath, out)
}

// RemoveAt returns a new document with the element at index removed from
// the sequence at sectionPath. An invalid index fails with
// *OutOfRangeError. Removing the last remaining element of a section is
// allowed; keeping at least one visible row is a presentation concern.
func RemoveAt(doc any, sectionPath Path, index int) (any, error) {
	arr, err := sectionAt(doc, sectionPath)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(arr) {
		return nil, &OutOfRangeError{Path: sectionPath.String(), Index: index, Length: len(arr)}
	}
	out := make([]any, 0, len(arr)-1)
	out = append(out, arr[:index]...)
	out = append(out, arr[index+1:]...)
	return replaceSection(doc, sectionPath, out)
}

// sectionAt resolves sectionPath to an array value.
func sectionAt(doc any, sectionPath Path) ([]any, error) {
	v, err := Get(doc, sectionPath)
	if err != nil {
		return nil, err
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, &NotFoundError{Path: sectionPath.String()}
	}
	return arr, nil
}

// replaceSection writes a rebuilt section back without tripping over the
// empty-path case in Set.
func replaceSection(doc any, sectionPath Path, section []any) (any, error) {
	if len(sectionPath) == 0 {
		return section, nil
	}
	return Set(doc, sectionPath, section)
}
