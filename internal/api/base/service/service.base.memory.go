package basesvc

import (
	"context"
	"reflect"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "flixx_video/internal/api/base/models"
	"flixx_video/internal/common"
)

// BaseServiceMemoryImpl là implementation in-memory của BaseServiceMongo,
// dùng làm collaborator thay thế trong test và môi trường không có MongoDB.
// Hỗ trợ tập thao tác mà các domain service sử dụng: filter rỗng hoặc theo _id,
// sort đơn/đa khóa qua FindOptions, và update $inc/$set nguyên tử dưới mutex.
type BaseServiceMemoryImpl[T any] struct {
	mu    sync.Mutex
	items []T

	// failWith: khi set, mọi thao tác trả về lỗi này (giả lập sự cố storage)
	failWith error
}

// NewBaseServiceMemory tạo mới một BaseServiceMemoryImpl rỗng
func NewBaseServiceMemory[T any]() *BaseServiceMemoryImpl[T] {
	return &BaseServiceMemoryImpl[T]{}
}

// FailWith đặt lỗi trả về cho mọi thao tác sau đó (nil để hết lỗi)
func (s *BaseServiceMemoryImpl[T]) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = err
}

// InsertOne thêm một bản ghi, tự sinh ObjectID nếu field _id đang zero
func (s *BaseServiceMemoryImpl[T]) InsertOne(ctx context.Context, data T) (T, error) {
	var zero T
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return zero, s.failWith
	}

	ensureObjectID(&data)
	s.items = append(s.items, data)
	return data, nil
}

// FindOne trả về bản ghi đầu tiên khớp filter
func (s *BaseServiceMemoryImpl[T]) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error) {
	var zero T
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return zero, s.failWith
	}

	for _, item := range s.items {
		if matchFilter(item, filter) {
			return item, nil
		}
	}
	return zero, common.ErrNotFound
}

// Find trả về các bản ghi khớp filter, áp dụng Sort/Skip/Limit từ opts
func (s *BaseServiceMemoryImpl[T]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}

	results := make([]T, 0)
	for _, item := range s.items {
		if matchFilter(item, filter) {
			results = append(results, item)
		}
	}

	if opts != nil {
		if opts.Sort != nil {
			sortItems(results, opts.Sort)
		}
		if opts.Skip != nil {
			if *opts.Skip >= int64(len(results)) {
				results = results[:0]
			} else {
				results = results[*opts.Skip:]
			}
		}
		if opts.Limit != nil && *opts.Limit < int64(len(results)) {
			results = results[:*opts.Limit]
		}
	}

	return results, nil
}

// FindOneAndUpdate tìm và cập nhật bản ghi đầu tiên khớp filter trong một critical section.
// Hỗ trợ update $inc và $set; luôn trả về document SAU khi update.
func (s *BaseServiceMemoryImpl[T]) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts *options.FindOneAndUpdateOptions) (T, error) {
	var zero T
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return zero, s.failWith
	}

	for i := range s.items {
		if matchFilter(s.items[i], filter) {
			if err := applyUpdate(&s.items[i], update); err != nil {
				return zero, err
			}
			return s.items[i], nil
		}
	}
	return zero, common.ErrNotFound
}

// CountDocuments đếm số bản ghi khớp filter
func (s *BaseServiceMemoryImpl[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return 0, s.failWith
	}

	var count int64
	for _, item := range s.items {
		if matchFilter(item, filter) {
			count++
		}
	}
	return count, nil
}

// FindOneById tìm một bản ghi theo ObjectID
func (s *BaseServiceMemoryImpl[T]) FindOneById(ctx context.Context, id primitive.ObjectID) (T, error) {
	return s.FindOne(ctx, bson.M{"_id": id}, nil)
}

// FindWithPagination tìm bản ghi với phân trang, cùng chuẩn hóa page/limit như bản Mongo
func (s *BaseServiceMemoryImpl[T]) FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[T], error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	total, err := s.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	if opts == nil {
		opts = options.Find()
	}
	opts.SetSkip((page - 1) * limit).SetLimit(limit)

	items, err := s.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	return &basemodels.PaginateResult[T]{
		Items:      items,
		Pagination: basemodels.NewPagination(page, limit, total),
	}, nil
}

// DocumentExists kiểm tra bản ghi khớp filter có tồn tại hay không
func (s *BaseServiceMemoryImpl[T]) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	count, err := s.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ====================================
// CÁC HELPER REFLECTION
// ====================================

// ensureObjectID sinh ObjectID mới cho field bson "_id" nếu đang zero
func ensureObjectID[T any](item *T) {
	v := reflect.ValueOf(item).Elem()
	field := fieldByBSONTag(v, "_id")
	if !field.IsValid() || !field.CanSet() {
		return
	}
	if oid, ok := field.Interface().(primitive.ObjectID); ok && oid.IsZero() {
		field.Set(reflect.ValueOf(primitive.NewObjectID()))
	}
}

// fieldByBSONTag tìm field của struct theo tên bson tag (phần trước dấu phẩy)
func fieldByBSONTag(v reflect.Value, name string) reflect.Value {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		tag := strings.Split(t.Field(i).Tag.Get("bson"), ",")[0]
		if tag == name {
			return v.Field(i)
		}
	}
	return reflect.Value{}
}

// matchFilter kiểm tra item khớp filter hay không.
// filter nil hoặc bson.M rỗng khớp tất cả; bson.M khác so khớp bằng từng field theo bson tag.
func matchFilter(item interface{}, filter interface{}) bool {
	if filter == nil {
		return true
	}
	m, ok := filter.(bson.M)
	if !ok {
		return false
	}
	v := reflect.ValueOf(item)
	for key, want := range m {
		field := fieldByBSONTag(v, key)
		if !field.IsValid() {
			return false
		}
		if !valueEquals(field.Interface(), want) {
			return false
		}
	}
	return true
}

// valueEquals so sánh giá trị field với giá trị trong filter, chuẩn hóa kiểu số
func valueEquals(have, want interface{}) bool {
	if hn, ok := toFloat64(have); ok {
		if wn, ok := toFloat64(want); ok {
			return hn == wn
		}
		return false
	}
	return reflect.DeepEqual(have, want)
}

// applyUpdate áp dụng document update ($inc, $set) lên item
func applyUpdate[T any](item *T, update interface{}) error {
	m, ok := update.(bson.M)
	if !ok {
		return common.ErrInvalidFormat
	}
	v := reflect.ValueOf(item).Elem()

	if inc, ok := m["$inc"].(bson.M); ok {
		for key, delta := range inc {
			field := fieldByBSONTag(v, key)
			if !field.IsValid() || !field.CanSet() {
				return common.ErrInvalidFormat
			}
			n, ok := toFloat64(delta)
			if !ok {
				return common.ErrInvalidFormat
			}
			switch field.Kind() {
			case reflect.Int, reflect.Int32, reflect.Int64:
				field.SetInt(field.Int() + int64(n))
			case reflect.Float32, reflect.Float64:
				field.SetFloat(field.Float() + n)
			default:
				return common.ErrInvalidFormat
			}
		}
	}

	if set, ok := m["$set"].(bson.M); ok {
		for key, val := range set {
			field := fieldByBSONTag(v, key)
			if !field.IsValid() || !field.CanSet() {
				return common.ErrInvalidFormat
			}
			rv := reflect.ValueOf(val)
			if !rv.Type().AssignableTo(field.Type()) {
				if !rv.Type().ConvertibleTo(field.Type()) {
					return common.ErrInvalidFormat
				}
				rv = rv.Convert(field.Type())
			}
			field.Set(rv)
		}
	}

	return nil
}

// sortItems sắp xếp items theo sort document (bson.D, 1 tăng dần / -1 giảm dần), ổn định theo từng khóa
func sortItems[T any](items []T, sortDoc interface{}) {
	keys, ok := sortDoc.(bson.D)
	if !ok || len(keys) == 0 {
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		vi := reflect.ValueOf(items[i])
		vj := reflect.ValueOf(items[j])
		for _, key := range keys {
			fi := fieldByBSONTag(vi, key.Key)
			fj := fieldByBSONTag(vj, key.Key)
			if !fi.IsValid() || !fj.IsValid() {
				continue
			}
			cmp := compareValues(fi.Interface(), fj.Interface())
			if cmp == 0 {
				continue
			}
			order, _ := toFloat64(key.Value)
			if order < 0 {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
}

// compareValues so sánh hai giá trị cùng kiểu: -1 nếu a < b, 0 nếu bằng, 1 nếu a > b
func compareValues(a, b interface{}) int {
	if oa, ok := a.(primitive.ObjectID); ok {
		if ob, ok := b.(primitive.ObjectID); ok {
			return strings.Compare(oa.Hex(), ob.Hex())
		}
	}
	if sa, ok := a.(string); ok {
		if sb, ok := b.(string); ok {
			return strings.Compare(sa, sb)
		}
	}
	na, okA := toFloat64(a)
	nb, okB := toFloat64(b)
	if okA && okB {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		default:
			return 0
		}
	}
	return 0
}

// toFloat64 chuẩn hóa các kiểu số về float64
func toFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
