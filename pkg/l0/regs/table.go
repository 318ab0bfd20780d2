package regs

// table is the TMC5240 register layout in address order.
var table = []Def{
	{"gconf", 0x00, ReadWrite, 0x001FF196},
	{"gstat", 0x01, ReadClear, 0x0000001F},
	{"ifcnt", 0x02, ReadOnly, 0x000000FF},
	{"nodeconf", 0x03, ReadWrite, 0x00000FFF},
	{"io[0]", 0x04, ReadOnly, 0xFF07EFFF},
	{"io[1]", 0x04, ReadWrite, 0x00001000},
	{"x_comp[0]", 0x05, ReadWrite, 0xFFFFFFFF},
	{"x_comp[1]", 0x06, ReadWrite, 0x00FFFFFF},
	{"drv_conf", 0x0A, ReadWrite, 0x00000033},
	{"global_scalar", 0x0B, ReadWrite, 0x000000FF},
	{"i_hold_i_run", 0x10, ReadWrite, 0x0F0F1F1F},
	{"t_pwr_down", 0x11, ReadWrite, 0x000000FF},
	{"t_step", 0x12, ReadOnly, 0x000FFFFF},
	{"t_pwm_t_hrs", 0x13, ReadWrite, 0x000FFFFF},
	{"t_cool_t_hrs", 0x14, ReadWrite, 0x000FFFFF},
	{"t_high", 0x15, ReadWrite, 0x000FFFFF},
	{"ramp_mode", 0x20, ReadWrite, 0x00000003},
	{"x_act", 0x21, ReadWrite, 0xFFFFFFFF},
	{"v_act", 0x22, ReadOnly, 0x00FFFFFF},
	{"v_start", 0x23, ReadWrite, 0x0003FFFF},
	{"a1", 0x24, ReadWrite, 0x0003FFFF},
	{"v1", 0x25, ReadWrite, 0x0003FFFF},
	{"a_max", 0x26, ReadWrite, 0x0003FFFF},
	{"v_max", 0x27, ReadWrite, 0x007FFFFF},
	{"d_max", 0x28, ReadWrite, 0x0003FFFF},
	{"tv_max", 0x29, ReadWrite, 0x0000FFFF},
	{"d1", 0x2A, ReadWrite, 0x0003FFFF},
	{"v_stop", 0x2B, ReadWrite, 0x0003FFFF},
	{"t_zero_wait", 0x2C, ReadWrite, 0x0000FFFF},
	{"x_target", 0x2D, ReadWrite, 0xFFFFFFFF},
	{"v2", 0x2E, ReadWrite, 0x000FFFFF},
	{"a2", 0x2F, ReadWrite, 0x0003FFFF},
	{"d2", 0x30, ReadWrite, 0x0003FFFF},
	{"vdc_min", 0x33, ReadWrite, 0x007FFFFF},
	{"sw_mode", 0x34, ReadWrite, 0x00007FFF},
	{"ramp_stat[0]", 0x35, ReadOnly, 0x0000EF33},
	{"ramp_stat[1]", 0x35, ReadClear, 0x000010CC},
	{"x_latch", 0x36, ReadOnly, 0xFFFFFFFF},
	{"enc_mode", 0x38, ReadWrite, 0x000007FF},
	{"x_enc", 0x39, ReadWrite, 0xFFFFFFFF},
	{"enc_const", 0x3A, ReadWrite, 0xFFFFFFFF},
	{"enc_stat", 0x3B, ReadClear, 0x00000003},
	{"enc_latch", 0x3C, ReadOnly, 0xFFFFFFFF},
	{"enc_dev", 0x3D, ReadWrite, 0x000FFFFF},
	{"virt_stop_l", 0x3E, ReadWrite, 0xFFFFFFFF},
	{"virt_stop_r", 0x3F, ReadWrite, 0xFFFFFFFF},
	{"adc_vsup_ain", 0x50, ReadOnly, 0x1FFF1FFF},
	{"adc_temp", 0x51, ReadOnly, 0x1FFF1FFF},
	{"otw_ov_vth", 0x52, ReadWrite, 0x1FFF1FFF},
	{"mslut_0", 0x60, ReadWrite, 0xFFFFFFFF},
	{"mslut_1", 0x61, ReadWrite, 0xFFFFFFFF},
	{"mslut_2", 0x62, ReadWrite, 0xFFFFFFFF},
	{"mslut_3", 0x63, ReadWrite, 0xFFFFFFFF},
	{"mslut_4", 0x64, ReadWrite, 0xFFFFFFFF},
	{"mslut_5", 0x65, ReadWrite, 0xFFFFFFFF},
	{"mslut_6", 0x66, ReadWrite, 0xFFFFFFFF},
	{"mslut_7", 0x67, ReadWrite, 0xFFFFFFFF},
	{"mslut_sel", 0x68, ReadWrite, 0xFFFFFFFF},
	{"mslut_start", 0x69, ReadWrite, 0xFFFF00FF},
	{"mscnt", 0x6A, ReadOnly, 0x000003FF},
	{"mscuract", 0x6B, ReadOnly, 0x01FF01FF},
	{"chop_conf", 0x6C, ReadWrite, 0xFFFDDFFF},
	{"cool_conf", 0x6D, ReadWrite, 0x017FEF6F},
	{"dc_ctrl", 0x6E, ReadWrite, 0x00FF03FF},
	{"drv_status", 0x6F, ReadOnly, 0xFF1FF3FF},
	{"pwm_conf", 0x70, ReadWrite, 0xFFFFFFFF},
	{"pwm_scale", 0x71, ReadOnly, 0x01FF03FF},
	{"pwm_auto", 0x72, ReadOnly, 0x00FF00FF},
	{"sg4_thrs", 0x74, ReadWrite, 0x000003FF},
	{"sg4_result", 0x75, ReadOnly, 0x000003FF},
	{"sg4_ind", 0x76, ReadOnly, 0xFFFFFFFF},
}
